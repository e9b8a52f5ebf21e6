package bfvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineDiscard(t *testing.T) {
	vm := NewVM(NewProgram([]byte(",.,.")))
	vm.Input.Reset(strings.NewReader("ab\ncd\n"))
	out := new(bytes.Buffer)
	vm.Output = out
	if err := runToEnd(vm); err != nil {
		t.Fatal(err)
	}
	// the rest of each line is dropped after the first byte
	if out.String() != "ac" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRawRead(t *testing.T) {
	vm := NewVM(NewProgram([]byte(",.,.")))
	vm.Input.Raw = true
	vm.Input.Reset(strings.NewReader("ab\ncd\n"))
	out := new(bytes.Buffer)
	vm.Output = out
	if err := runToEnd(vm); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ab" {
		t.Fatalf("got %q", out.String())
	}
}

func TestReadNewline(t *testing.T) {
	// a newline as the read byte has nothing left on its line
	in := NewInput(strings.NewReader("\nx"))
	if b := in.ReadCell(0); b != '\n' {
		t.Fatalf("got %d", b)
	}
	if b := in.ReadCell(0); b != 'x' {
		t.Fatalf("got %d", b)
	}
}

func TestEOFZero(t *testing.T) {
	vm := NewVM(NewProgram([]byte("+++,.")))
	out := new(bytes.Buffer)
	vm.Output = out
	if err := runToEnd(vm); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{0}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestEOFKeep(t *testing.T) {
	vm := NewVM(NewProgram([]byte("+++,.")))
	vm.Input.EOF = EOFKeep
	out := new(bytes.Buffer)
	vm.Output = out
	if err := runToEnd(vm); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{3}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestEOFAllBits(t *testing.T) {
	vm := NewVM(NewProgram([]byte(",.")))
	vm.Input.EOF = EOFAllBits
	out := new(bytes.Buffer)
	vm.Output = out
	if err := runToEnd(vm); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{255}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestInputAfterExhaustion(t *testing.T) {
	in := NewInput(strings.NewReader("a"))
	if b := in.ReadCell(7); b != 'a' {
		t.Fatalf("got %d", b)
	}
	if b := in.ReadCell(7); b != 0 {
		t.Fatalf("got %d", b)
	}
	// exhaustion is stable
	if b := in.ReadCell(7); b != 0 {
		t.Fatalf("got %d", b)
	}
}
