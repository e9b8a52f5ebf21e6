package bfvm

import (
	"io"
	"math"
)

// VM executes a Program against a growable tape of 8-bit cells. All
// state is owned by the single goroutine driving Step or Run; there is
// no internal locking.
type VM struct {
	Program Program
	Tape    []byte
	Pointer int
	IP      int // instruction cursor
	Steps   uint64

	Input  *Input
	Output io.Writer

	// TapeMax is the maximum tape length in cells. Moving right off the
	// last addressable cell is a tape overflow.
	TapeMax int

	// StepLimit is the number of steps granted between step limit
	// interrupts during Run. 0 means unlimited.
	StepLimit uint64
}

func NewVM(program Program) *VM {
	return &VM{
		Program: program,
		Tape:    []byte{0},
		Input:   NewInput(nil),
		Output:  io.Discard,
		TapeMax: math.MaxInt,
	}
}

func (v *VM) write() {
	buf := [1]byte{v.Tape[v.Pointer]}
	// sink failures are the collaborator's concern
	_, _ = v.Output.Write(buf[:])
}

func (v *VM) read() {
	v.Tape[v.Pointer] = v.Input.ReadCell(v.Tape[v.Pointer])
}
