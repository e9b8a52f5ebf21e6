package play

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusee/bft/modes"
	"github.com/reusee/dscope"
	"golang.org/x/net/websocket"
)

func dial(t *testing.T, server *Server) *websocket.Conn {
	t.Helper()
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/run"
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

func TestServerRun(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		server *Server,
	) {
		conn := dial(t, server)

		if err := websocket.Message.Send(conn, "++."); err != nil {
			t.Fatal(err)
		}

		var output []byte
		if err := websocket.Message.Receive(conn, &output); err != nil {
			t.Fatal(err)
		}
		if len(output) != 1 || output[0] != 2 {
			t.Fatalf("got %v", output)
		}

		var result RunResult
		if err := websocket.JSON.Receive(conn, &result); err != nil {
			t.Fatal(err)
		}
		if !result.Halted {
			t.Fatalf("got %+v", result)
		}
		if result.Steps != 3 {
			t.Fatalf("got %d", result.Steps)
		}
	})
}

func TestServerInput(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		server *Server,
	) {
		conn := dial(t, server)

		if err := websocket.Message.Send(conn, ",."); err != nil {
			t.Fatal(err)
		}
		if err := websocket.Message.Send(conn, "A\n"); err != nil {
			t.Fatal(err)
		}

		var output []byte
		if err := websocket.Message.Receive(conn, &output); err != nil {
			t.Fatal(err)
		}
		if len(output) != 1 || output[0] != 'A' {
			t.Fatalf("got %v", output)
		}
	})
}

func TestServerFatalError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		server *Server,
	) {
		conn := dial(t, server)

		if err := websocket.Message.Send(conn, "<"); err != nil {
			t.Fatal(err)
		}

		var result RunResult
		if err := websocket.JSON.Receive(conn, &result); err != nil {
			t.Fatal(err)
		}
		if result.Halted {
			t.Fatalf("got %+v", result)
		}
		if !strings.Contains(result.Error, "tape underflow") {
			t.Fatalf("got %q", result.Error)
		}
	})
}

func TestServerStepLimit(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		server *Server,
	) {
		conn := dial(t, server)

		if err := websocket.Message.Send(conn, "+[]"); err != nil {
			t.Fatal(err)
		}

		var result RunResult
		if err := websocket.JSON.Receive(conn, &result); err != nil {
			t.Fatal(err)
		}
		if result.Halted {
			t.Fatalf("got %+v", result)
		}
		if !strings.Contains(result.Error, "step limit") {
			t.Fatalf("got %q", result.Error)
		}
	})
}
