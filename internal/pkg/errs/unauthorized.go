package errs

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the sentinel error for failed authorization checks.
var ErrUnauthorized = errors.New("unauthorized")

// UnauthorizedError indicates that the acting identity does not hold the role,
// or does not own the specific object, required for the attempted action.
type UnauthorizedError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError without an underlying cause.
func NewUnauthorizedError(actorID string, action string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Action: action}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(actorID string, action string, cause error) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Action: action, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	msg := fmt.Sprintf("%s: actor %s may not %s", ErrUnauthorized, e.ActorID, e.Action)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
