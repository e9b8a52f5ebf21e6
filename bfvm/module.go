package bfvm

import (
	"github.com/reusee/bft/bfconfigs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// MakeVM builds a VM with the configured limits and read policy. The
// caller wires the input source and output sink.
type MakeVM func(program Program) *VM

func (Module) MakeVM(
	stepLimit StepLimit,
	tapeMax TapeMax,
	eofPolicy EOFPolicy,
	rawRead RawRead,
) MakeVM {
	return func(program Program) *VM {
		vm := NewVM(program)
		vm.StepLimit = uint64(stepLimit)
		vm.TapeMax = int(tapeMax)
		vm.Input.EOF = eofPolicy
		vm.Input.Raw = bool(rawRead)
		return vm
	}
}
