package bfvm

type Interrupt struct {
	StepLimit bool
}

var InterruptStepLimit = &Interrupt{
	StepLimit: true,
}
