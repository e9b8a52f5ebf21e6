package bfvm

// matchForward scans from a '[' at from towards the end of the program,
// counting jump starts and ends. The first position where the counts
// balance is the matching ']'. Nested pairs balance internally first, so
// the scan cannot stop early at an inner bracket.
func matchForward(program Program, from int) (int, bool) {
	var opens, closes int
	for pos := from; pos < len(program); pos++ {
		switch program[pos] {
		case OpJumpStart:
			opens++
		case OpJumpEnd:
			closes++
		}
		if opens == closes {
			return pos, true
		}
	}
	return 0, false
}

// matchBackward is the mirror scan for a ']' at from, down to position 0
// inclusive.
func matchBackward(program Program, from int) (int, bool) {
	var opens, closes int
	for pos := from; pos >= 0; pos-- {
		switch program[pos] {
		case OpJumpStart:
			opens++
		case OpJumpEnd:
			closes++
		}
		if opens == closes {
			return pos, true
		}
	}
	return 0, false
}

// Check validates bracket nesting in a single pass without executing
// anything. Running a program never consults this; the interpreter
// re-scans on each loop crossing and only faults on brackets it actually
// has to jump over.
func Check(program Program) error {
	var stack []int
	for pos, c := range program {
		switch c {
		case OpJumpStart:
			stack = append(stack, pos)
		case OpJumpEnd:
			if len(stack) == 0 {
				return &Error{
					Kind: KindUnmatchedJumpEnd,
					Pos:  pos + 1,
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return &Error{
			Kind: KindUnmatchedJumpStart,
			Pos:  stack[len(stack)-1] + 1,
		}
	}
	return nil
}
