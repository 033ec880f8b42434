package session

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by Start when no items are given.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidState is returned when an operation is called outside the
// phases it is valid in. A correctly wired UI never triggers it.
var ErrInvalidState = errors.New("invalid state")

// ErrAlreadyJudged is returned when an item revisited with Retreat is
// answered or given up a second time. It wraps ErrInvalidState.
var ErrAlreadyJudged = fmt.Errorf("%w: item already judged", ErrInvalidState)

// PhaseError records which operation was rejected and in which phase.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s not allowed while %s", ErrInvalidState, e.Op, e.Phase)
}

func (e *PhaseError) Unwrap() error { return ErrInvalidState }
