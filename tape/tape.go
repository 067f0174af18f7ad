// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"iter"
	"slices"
)

const (
	TAPE_LENGTH = 512 // Cells on every tape.
	TAPE_START  = 64  // Initial head position on every tape.
)

// Tape is a fixed length sequence of symbol cells with a single head.
type Tape struct {
	Name  string // Name used in errors and displays.
	Stats *Stats // Access counters, may be shared between tapes.

	cells [TAPE_LENGTH]Symbol
	head  int
}

// New creates a blank tape with its head at TAPE_START.
func New(name string, stats *Stats) (tp *Tape) {
	tp = &Tape{
		Name:  name,
		Stats: stats,
		head:  TAPE_START,
	}

	return
}

// Len is the number of cells on the tape.
func (tp *Tape) Len() int {
	return len(tp.cells)
}

// Read returns the symbol under the head.
func (tp *Tape) Read() Symbol {
	tp.Stats.tapeRead()
	return tp.cells[tp.head]
}

// Write replaces the symbol under the head.
func (tp *Tape) Write(sym Symbol) {
	tp.Stats.tapeWrite()
	tp.cells[tp.head] = sym
}

// Position returns the head position.
func (tp *Tape) Position() int {
	tp.Stats.headRead()
	return tp.head
}

// MoveTo sets the head position. The head is not moved if pos is off the
// tape.
func (tp *Tape) MoveTo(pos int) (err error) {
	tp.Stats.headWrite()

	if pos < 0 || pos >= len(tp.cells) {
		err = &ErrOutOfRange{Tape: tp.Name, Position: pos, Length: len(tp.cells)}
		return
	}

	tp.head = pos
	return
}

// MoveRight moves the head one cell right. The head is stepped in place,
// so only the head write is counted.
func (tp *Tape) MoveRight() error {
	return tp.MoveTo(tp.head + 1)
}

// MoveLeft moves the head one cell left.
func (tp *Tape) MoveLeft() error {
	return tp.MoveTo(tp.head - 1)
}

// Load stores symbols starting at offset without moving the head.
// Loading is not counted in Stats.
func (tp *Tape) Load(offset int, symbols ...Symbol) (err error) {
	switch {
	case offset < 0:
		err = &ErrOutOfRange{Tape: tp.Name, Position: offset, Length: len(tp.cells)}
		return
	case offset+len(symbols) > len(tp.cells):
		err = &ErrOutOfRange{Tape: tp.Name, Position: offset + len(symbols) - 1, Length: len(tp.cells)}
		return
	}

	copy(tp.cells[offset:], symbols)

	return
}

// Cells iterates over every cell of the tape, left to right.
// Iteration is not counted in Stats.
func (tp *Tape) Cells() iter.Seq[Symbol] {
	return slices.Values(tp.cells[:])
}
