package bfvm

const Theory = `
# Tape Machine Theory

The engine is a minimal Von Neumann split: an immutable Program of raw
characters and a mutable Tape of 8-bit cells, bridged by two registers.

- Tape: starts as one zero cell, grows to the right one cell at a time,
  never shrinks. Cell arithmetic wraps modulo 256.
- Pointer: index of the active cell, always in bounds by construction.
- Instruction Cursor: index of the instruction being dispatched. The run
  halts when it passes the end of the Program.

Loops are the only control flow. A '[' over a zero cell skips forward to
its matching ']'; a ']' over a non-zero cell jumps back to its matching
'['. Matching is recomputed by a linear counting scan on every crossing:
the Program is immutable, so a jump table would be a valid optimization,
but the re-scan is the reference behavior and its O(n) cost is part of
the machine's observable texture.

Four conditions are fatal and end the run with no recovery: moving left
off cell zero, moving right past the tape bound, and a jump whose
matching bracket does not exist in the scanned direction.
`
