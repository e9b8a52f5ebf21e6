package bfvm

// moveRight advances the pointer, growing the tape by one zero cell when
// the pointer is at the rightmost allocated cell. The tape never shrinks.
func (v *VM) moveRight() error {
	if v.Pointer >= v.TapeMax-1 {
		return &Error{
			Kind: KindTapeOverflow,
			Pos:  v.IP + 1,
		}
	}
	if v.Pointer+1 == len(v.Tape) {
		v.Tape = append(v.Tape, 0)
	}
	v.Pointer++
	return nil
}

func (v *VM) moveLeft() error {
	if v.Pointer == 0 {
		return &Error{
			Kind: KindTapeUnderflow,
			Pos:  v.IP + 1,
		}
	}
	v.Pointer--
	return nil
}

// increment and decrement wrap modulo 256, native uint8 arithmetic.
// The pointer invariant makes both infallible.

func (v *VM) increment() {
	v.Tape[v.Pointer]++
}

func (v *VM) decrement() {
	v.Tape[v.Pointer]--
}
