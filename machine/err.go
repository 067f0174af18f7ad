package machine

import (
	"errors"

	"github.com/ezrec/utm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrAborted     = errors.New(f("run aborted"))
	ErrInputLoaded = errors.New(f("input already loaded"))
	ErrInputLate   = errors.New(f("input after first cycle"))
)

// ErrRuntime indicates the cycle of a runtime error.
type ErrRuntime struct {
	Cycle int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d %v", err.Cycle, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrRunAborted is returned by Run when MaxSteps cycles did not halt.
type ErrRunAborted struct {
	Cycles int
}

func (err *ErrRunAborted) Error() string {
	return f("run aborted after %d cycles", err.Cycles)
}

func (err *ErrRunAborted) Unwrap() error {
	return ErrAborted
}
