package play

import (
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM bfvm.Module
}

type ListenAddr string

var listenFlag = cmds.Var[string]("-listen")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return ListenAddr(vars.FirstNonZero(
		*listenFlag,
		configs.First[string](loader, "play.listen"),
		"localhost:8700",
	))
}

func (Module) Server(
	logger logs.Logger,
	newSpan logs.NewSpan,
	makeVM bfvm.MakeVM,
) *Server {
	return &Server{
		logger:  logger,
		newSpan: newSpan,
		makeVM:  makeVM,
	}
}
