package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"foo",
		"baz", "7",
	}); err != nil {
		t.Fatal(err)
	}
	if baz != 7 {
		t.Fatal()
	}
}

func TestErrorReturn(t *testing.T) {
	executor := NewExecutor()
	sentinel := errors.New("boom")
	executor.Define("boom", Func(func() error {
		return sentinel
	}))
	if err := executor.Execute([]string{"boom"}); !errors.Is(err, sentinel) {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalPointerArg(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("opt", Func(func(n *int) {
		got = n
	}))

	if err := executor.Execute([]string{"opt", "3"}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 3 {
		t.Fatal()
	}

	if err := executor.Execute([]string{"opt"}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 0 {
		t.Fatal()
	}
}
