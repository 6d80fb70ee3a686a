package escrow

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the state of held funds. Transitions are monotonic and
// one-way:
//
//	Frozen ──> Released (terminal)
//	   └─────> Refunded (terminal)
//
// Once an escrow leaves Frozen, no further transition is accepted: release
// and refund are mutually exclusive terminal outcomes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Frozen indicates the buyer's funds are held by the platform.
	Frozen

	// Released indicates the funds were paid out to the seller. Terminal.
	Released

	// Refunded indicates the funds were returned to the buyer. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Frozen:   "frozen",
		Released: "released",
		Refunded: "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Frozen:   "frozen",
		Released: "released",
		Refunded: "refunded",
	}
}

// Validate checks that the Status is one of the defined escrow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", raw))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Released || s == Refunded
}

// Release transitions Frozen -> Released. Any other source state, including
// Released itself, is rejected deterministically.
func (s Status) Release() (Status, error) {
	if s != Frozen {
		return 0, errs.NewInvalidStateError("escrow", s.String(), "release")
	}
	return Released, nil
}

// Refund transitions Frozen -> Refunded. Any other source state is rejected.
func (s Status) Refund() (Status, error) {
	if s != Frozen {
		return 0, errs.NewInvalidStateError("escrow", s.String(), "refund")
	}
	return Refunded, nil
}
