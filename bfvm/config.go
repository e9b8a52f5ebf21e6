package bfvm

import (
	"math"

	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/vars"
)

type StepLimit uint64

var stepLimitFlag = cmds.Var[uint64]("-step-limit")

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	if *stepLimitFlag != 0 {
		return StepLimit(*stepLimitFlag)
	}
	return StepLimit(configs.First[uint64](loader, "run.step_limit"))
}

type TapeMax int

var tapeMaxFlag = cmds.Var[int]("-tape-max")

func (Module) TapeMax(
	loader configs.Loader,
) TapeMax {
	if n := vars.FirstNonZero(
		*tapeMaxFlag,
		configs.First[int](loader, "tape.max"),
	); n > 0 {
		return TapeMax(n)
	}
	return TapeMax(math.MaxInt)
}

func (Module) EOFPolicy(
	loader configs.Loader,
) EOFPolicy {
	switch configs.First[string](loader, "read.eof") {
	case "keep":
		return EOFKeep
	case "all-bits":
		return EOFAllBits
	}
	return EOFZero
}

type RawRead bool

var rawReadFlag = cmds.Switch("-raw-read")

func (Module) RawRead(
	loader configs.Loader,
) RawRead {
	if *rawReadFlag {
		return true
	}
	return RawRead(configs.First[bool](loader, "read.raw"))
}
