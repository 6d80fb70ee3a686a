package assignment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents a worker's delivery progress for one order.
// Transitions are forward-only:
//
//	Requested ──> Accepted ──> PickedUp ──> Delivered
//	     └──────────────────────┘
//
// A worker may verify pickup directly from Requested; the Accepted step is an
// optional acknowledgement. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Requested is the initial status when a seller assigns the worker.
	Requested

	// Accepted indicates the worker acknowledged the assignment.
	Accepted

	// PickedUp indicates the worker verified pickup with the seller.
	PickedUp

	// Delivered indicates the buyer verified delivery. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

// Validate checks that the Status is one of the defined assignment states.
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
	return s == Delivered
}

// Accept transitions Requested -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != Requested {
		return 0, errs.NewInvalidStateError("assignment", s.String(), "accept")
	}
	return Accepted, nil
}

// PickUp transitions Requested or Accepted -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Requested && s != Accepted {
		return 0, errs.NewInvalidStateError("assignment", s.String(), "mark picked up")
	}
	return PickedUp, nil
}

// Deliver transitions PickedUp -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidStateError("assignment", s.String(), "mark delivered")
	}
	return Delivered, nil
}
