package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel error for illegal lifecycle transitions.
// It covers both transitions from a state that does not permit the action and
// repeated application of an already-applied transition.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError indicates that an action was attempted from a lifecycle
// state that does not permit it.
type InvalidStateError struct {
	Entity  string
	Current string
	Action  string
	Cause   error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(entity string, current string, action string) *InvalidStateError {
	return &InvalidStateError{
		Entity:  entity,
		Current: current,
		Action:  action,
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(entity string, current string, action string, cause error) *InvalidStateError {
	return &InvalidStateError{
		Entity:  entity,
		Current: current,
		Action:  action,
		Cause:   cause,
	}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: %s in status %s does not permit %s",
		ErrInvalidState, e.Entity, e.Current, e.Action)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
