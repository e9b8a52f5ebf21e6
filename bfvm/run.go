package bfvm

// Step runs one fetch-dispatch-execute cycle. It reports whether the
// cursor has passed the end of the program. Errors are fatal: the VM
// state is left as it was when the violating instruction was dispatched
// and no further instruction may run.
func (v *VM) Step() (halted bool, err error) {
	if v.IP >= len(v.Program) {
		return true, nil
	}

	inst := v.Program[v.IP]
	v.Steps++

	switch inst {

	case OpMoveRight:
		if err := v.moveRight(); err != nil {
			return false, err
		}
		v.IP++

	case OpMoveLeft:
		if err := v.moveLeft(); err != nil {
			return false, err
		}
		v.IP++

	case OpIncrement:
		v.increment()
		v.IP++

	case OpDecrement:
		v.decrement()
		v.IP++

	case OpWrite:
		v.write()
		v.IP++

	case OpRead:
		v.read()
		v.IP++

	case OpJumpStart:
		if v.Tape[v.Pointer] != 0 {
			// enter the loop body, no scan
			v.IP++
			break
		}
		pos, ok := matchForward(v.Program, v.IP)
		if !ok {
			return false, &Error{
				Kind: KindUnmatchedJumpStart,
				Pos:  v.IP + 1,
			}
		}
		// land on the matching ']'; it is dispatched next and advances
		// past itself since the cell is zero
		v.IP = pos

	case OpJumpEnd:
		if v.Tape[v.Pointer] == 0 {
			v.IP++
			break
		}
		pos, ok := matchBackward(v.Program, v.IP)
		if !ok {
			return false, &Error{
				Kind: KindUnmatchedJumpEnd,
				Pos:  v.IP + 1,
			}
		}
		// land on the matching '['; it is re-dispatched
		v.IP = pos

	default:
		// not an instruction
		v.IP++
	}

	return v.IP >= len(v.Program), nil
}

// Run drives Step until the program halts or a fatal error occurs.
// A fatal error is yielded once, then the run stops. When StepLimit is
// set, InterruptStepLimit is yielded each time the granted steps are
// used up; yielding true grants another StepLimit steps.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	granted := v.Steps + v.StepLimit
	for {
		halted, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if halted {
			return
		}
		if v.StepLimit > 0 && v.Steps >= granted {
			if !yield(InterruptStepLimit, nil) {
				return
			}
			granted += v.StepLimit
		}
	}
}
