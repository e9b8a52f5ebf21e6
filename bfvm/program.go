package bfvm

import "bytes"

// The eight instruction characters. Anything else in a program is a no-op.
const (
	OpMoveRight = '>'
	OpMoveLeft  = '<'
	OpIncrement = '+'
	OpDecrement = '-'
	OpWrite     = '.'
	OpRead      = ','
	OpJumpStart = '['
	OpJumpEnd   = ']'
)

// Program is the raw source character sequence.
// It is fixed for the lifetime of a run, comments included.
type Program []byte

func NewProgram(src []byte) Program {
	return Program(bytes.Clone(src))
}
