package errs

import (
	"errors"
	"fmt"
)

// ErrCodeMismatch is the sentinel error for failed verification code checks.
var ErrCodeMismatch = errors.New("code mismatch")

// CodeMismatchError indicates that a submitted pickup or delivery code does not
// exactly match the code stored on the order. The submitted code is deliberately
// not recorded on the error.
type CodeMismatchError struct {
	CodeKind string
	Cause    error
}

// NewCodeMismatchError creates a CodeMismatchError without an underlying cause.
func NewCodeMismatchError(codeKind string) *CodeMismatchError {
	return &CodeMismatchError{CodeKind: codeKind}
}

// NewCodeMismatchErrorWithCause creates a CodeMismatchError wrapping an underlying cause.
func NewCodeMismatchErrorWithCause(codeKind string, cause error) *CodeMismatchError {
	return &CodeMismatchError{CodeKind: codeKind, Cause: cause}
}

func (e *CodeMismatchError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrCodeMismatch, e.CodeKind)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *CodeMismatchError) Unwrap() error {
	return ErrCodeMismatch
}
