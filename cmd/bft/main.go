package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/debugs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/bft/play"
	"github.com/reusee/dscope"
)

var (
	srcFile   = cmds.Var[string]("-file")
	inlineSrc = cmds.Var[string]("-e")
	checkOnly = cmds.Switch("-check")
	playMode  = cmds.Switch("-play")
	debugTap  = cmds.Switch("-debug")
)

func init() {
	cmds.Define("-version", cmds.Func(func() {
		fmt.Println("bft 1")
		os.Exit(0)
	}).Desc("print version"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		makeVM bfvm.MakeVM,
		server *play.Server,
		listenAddr play.ListenAddr,
		tap debugs.Tap,
	) {

		if *playMode {
			if err := server.ListenAndServe(ctx, listenAddr); err != nil {
				logger.Error("playground", "error", err)
				os.Exit(1)
			}
			return
		}

		program, name, err := loadProgram()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}

		if *checkOnly {
			if err := bfvm.Check(program); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
				os.Exit(1)
			}
			return
		}

		ctx, _ := newSpan(ctx, "")
		logger.DebugContext(ctx, "run", "program", name, "len", len(program))

		vm := makeVM(program)
		vm.Input.Reset(os.Stdin)
		vm.Output = os.Stdout

		var fatal error
		vm.Run(func(interrupt *bfvm.Interrupt, err error) bool {
			if err != nil {
				fatal = err
				return false
			}
			if interrupt == bfvm.InterruptStepLimit {
				if *debugTap {
					tap(ctx, "step limit", vmGlobals(vm))
					return true
				}
				fatal = fmt.Errorf("step limit exceeded after %d steps", vm.Steps)
			}
			return false
		})

		if fatal != nil {
			logger.ErrorContext(ctx, "run failed",
				"program", name,
				"steps", vm.Steps,
				"error", fatal,
			)
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", fatal)
			os.Exit(1)
		}

		logger.DebugContext(ctx, "halted", "steps", vm.Steps)
	})
}

func loadProgram() (bfvm.Program, string, error) {
	if *inlineSrc != "" {
		return bfvm.NewProgram([]byte(*inlineSrc)), "-e", nil
	}

	if *srcFile != "" {
		content, err := os.ReadFile(*srcFile)
		if err != nil {
			return nil, "", err
		}
		return bfvm.NewProgram(content), *srcFile, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", err
	}
	return bfvm.NewProgram(content), "stdin", nil
}

// vmGlobals exposes a stopped machine to the debug tap.
func vmGlobals(vm *bfvm.VM) map[string]any {
	return map[string]any{
		"tape":    vm.Tape,
		"pointer": vm.Pointer,
		"cursor":  vm.IP,
		"steps":   vm.Steps,
		"cell": func() int {
			return int(vm.Tape[vm.Pointer])
		},
		"peek": func(i int) int {
			if i < 0 || i >= len(vm.Tape) {
				return -1
			}
			return int(vm.Tape[i])
		},
		"poke": func(i int, v int) {
			if i >= 0 && i < len(vm.Tape) {
				vm.Tape[i] = byte(v)
			}
		},
	}
}
