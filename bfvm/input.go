package bfvm

import (
	"bufio"
	"bytes"
	"io"
)

// EOFPolicy decides what a read stores when the input source is
// exhausted. The language leaves this undefined; EOFZero is the default.
type EOFPolicy uint8

const (
	EOFZero    EOFPolicy = iota // store 0
	EOFKeep                     // leave the cell unchanged
	EOFAllBits                  // store 255
)

// Input wraps the input source with the console-read policy: one byte
// per read instruction, and unless Raw is set, the rest of the input
// line is discarded.
type Input struct {
	r   *bufio.Reader
	EOF EOFPolicy
	Raw bool
}

func NewInput(r io.Reader) *Input {
	if r == nil {
		r = bytes.NewReader(nil)
	}
	return &Input{
		r: bufio.NewReader(r),
	}
}

// Reset switches the input source, keeping the configured policy.
func (in *Input) Reset(r io.Reader) {
	in.r.Reset(r)
}

// ReadCell returns the next value for the current cell, whose present
// value is passed in for the EOFKeep policy.
func (in *Input) ReadCell(current byte) byte {
	b, err := in.r.ReadByte()
	if err != nil {
		switch in.EOF {
		case EOFKeep:
			return current
		case EOFAllBits:
			return 0xff
		}
		return 0
	}

	if !in.Raw && b != '\n' {
		in.discardLine()
	}
	return b
}

func (in *Input) discardLine() {
	for {
		c, err := in.r.ReadByte()
		if err != nil || c == '\n' {
			return
		}
	}
}
