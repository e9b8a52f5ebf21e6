package play

import (
	"context"
	"errors"
	"net/http"

	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/logs"
	"golang.org/x/net/websocket"
)

// Server runs untrusted programs over websocket connections. The client
// sends the program as the first frame; output bytes stream back as
// binary frames, further client frames feed the read instruction, and a
// final JSON frame reports the outcome.
type Server struct {
	logger  logs.Logger
	newSpan logs.NewSpan
	makeVM  bfvm.MakeVM
}

// runaway guard for programs with no configured limit
const maxPlaySteps = 10_000_000

type RunResult struct {
	Steps  uint64 `json:"steps"`
	Halted bool   `json:"halted"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/run", websocket.Handler(s.handleRun))
	return mux
}

func (s *Server) handleRun(conn *websocket.Conn) {
	defer conn.Close()
	ctx, _ := s.newSpan(conn.Request().Context(), "")

	var src string
	if err := websocket.Message.Receive(conn, &src); err != nil {
		s.logger.ErrorContext(ctx, "receive program", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "run program", "len", len(src))

	vm := s.makeVM(bfvm.NewProgram([]byte(src)))
	if vm.StepLimit == 0 || vm.StepLimit > maxPlaySteps {
		vm.StepLimit = maxPlaySteps
	}
	vm.Input.Reset(conn)
	vm.Output = frameWriter{conn}

	result := RunResult{
		Halted: true,
	}
	vm.Run(func(interrupt *bfvm.Interrupt, err error) bool {
		if err != nil {
			result.Halted = false
			result.Error = err.Error()
			return false
		}
		if interrupt == bfvm.InterruptStepLimit {
			result.Halted = false
			result.Error = "step limit exceeded"
		}
		return false
	})
	result.Steps = vm.Steps

	s.logger.InfoContext(ctx, "run finished",
		"steps", result.Steps,
		"halted", result.Halted,
		"error", result.Error,
	)
	if err := websocket.JSON.Send(conn, result); err != nil {
		s.logger.ErrorContext(ctx, "send result", "error", err)
	}
}

type frameWriter struct {
	conn *websocket.Conn
}

func (w frameWriter) Write(p []byte) (int, error) {
	if err := websocket.Message.Send(w.conn, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr ListenAddr) error {
	server := &http.Server{
		Addr:    string(addr),
		Handler: s.Handler(),
	}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()
	s.logger.Info("playground listening", "addr", addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
