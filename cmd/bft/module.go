package main

import (
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/debugs"
	"github.com/reusee/bft/play"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Play   play.Module
	Debugs debugs.Module
}
