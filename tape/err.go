package tape

import (
	"errors"

	"github.com/ezrec/utm/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrRange = errors.New(f("head out of range"))
)

// ErrOutOfRange reports a head placed outside of its tape.
type ErrOutOfRange struct {
	Tape     string
	Position int
	Length   int
}

func (err *ErrOutOfRange) Error() string {
	return f("tape %v position %d outside [0, %d)", err.Tape, err.Position, err.Length)
}

func (err *ErrOutOfRange) Unwrap() error {
	return ErrRange
}
