package bfvm

import "fmt"

type Kind uint8

const (
	KindTapeOverflow Kind = iota + 1
	KindTapeUnderflow
	KindUnmatchedJumpStart
	KindUnmatchedJumpEnd
)

func (k Kind) String() string {
	switch k {
	case KindTapeOverflow:
		return "tape overflow"
	case KindTapeUnderflow:
		return "tape underflow"
	case KindUnmatchedJumpStart:
		return "unmatched jump start"
	case KindUnmatchedJumpEnd:
		return "unmatched jump end"
	}
	return "unknown"
}

// Error is a fatal execution failure. All four kinds end the run
// immediately; none are recoverable.
type Error struct {
	Kind Kind
	Pos  int // 1-based position in the program, 0 if not applicable
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTapeOverflow:
		return fmt.Sprintf("attempted tape overflow at character %d", e.Pos)
	case KindTapeUnderflow:
		return fmt.Sprintf("attempted tape underflow at character %d", e.Pos)
	case KindUnmatchedJumpStart:
		return fmt.Sprintf("unbounded jump at character %d: expected corresponding ']' but was not found", e.Pos)
	case KindUnmatchedJumpEnd:
		return fmt.Sprintf("unbounded jump at character %d: expected corresponding '[' but was not found", e.Pos)
	}
	return fmt.Sprintf("unknown error at character %d", e.Pos)
}
