package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders can
// only move forward along the legal workflow, or sideways into cancelled:
//
//	PendingPayment -> PaymentFrozen -> SellerAccepted -> WorkerAssigned -> PickedUp -> Completed
//	      |                |                 |                 |              |
//	      └────────────────┴─────────────────┴─────────────────┴──────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status at creation, before the escrow
	// freeze has been recorded. Within the atomic creation step the order
	// immediately moves to PaymentFrozen.
	PendingPayment

	// PaymentFrozen indicates the buyer's funds are held in escrow and the
	// order is waiting for the seller to accept.
	PaymentFrozen

	// SellerAccepted indicates the seller has accepted the order and may now
	// assign a delivery worker.
	SellerAccepted

	// WorkerAssigned indicates a delivery worker has been assigned and pickup
	// and delivery codes have been issued.
	WorkerAssigned

	// PickedUp indicates the worker has verified pickup with the seller.
	PickedUp

	// Completed indicates the buyer has verified delivery and the escrow has
	// been released. Terminal.
	Completed

	// Cancelled indicates the order was cancelled before completion and any
	// escrow was refunded. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		PendingPayment: "pending_payment",
		PaymentFrozen:  "payment_frozen",
		SellerAccepted: "seller_accepted",
		WorkerAssigned: "worker_assigned",
		PickedUp:       "picked_up",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment: "pending_payment",
		PaymentFrozen:  "payment_frozen",
		SellerAccepted: "seller_accepted",
		WorkerAssigned: "worker_assigned",
		PickedUp:       "picked_up",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when rehydrating
// orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
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

// ValidateCanHaveEscrow validates the consistency between order status and
// escrow linkage. Every status from PaymentFrozen onward requires an escrow;
// PendingPayment must not have one. Cancelled orders may carry either (an
// order cancelled before the freeze committed has none).
func (s Status) ValidateCanHaveEscrow(hasEscrow bool) error {
	if s == Cancelled {
		return nil
	}

	if hasEscrow && s == PendingPayment {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have an escrow", s.String()))
	}

	if !hasEscrow && s != PendingPayment {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no escrow", s.String()))
	}

	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Freeze transitions PendingPayment -> PaymentFrozen once the escrow freeze
// has succeeded. Any other source state is illegal.
func (s Status) Freeze() (Status, error) {
	if s != PendingPayment {
		return 0, errs.NewInvalidStateError("order", s.String(), "freeze payment")
	}
	return PaymentFrozen, nil
}

// Accept transitions PaymentFrozen -> SellerAccepted.
// Accepting twice fails: the second call sees SellerAccepted and is rejected.
func (s Status) Accept() (Status, error) {
	if s != PaymentFrozen {
		return 0, errs.NewInvalidStateError("order", s.String(), "accept")
	}
	return SellerAccepted, nil
}

// AssignWorker transitions SellerAccepted -> WorkerAssigned.
// There is no reassignment: once a worker is assigned the transition cannot
// be repeated.
func (s Status) AssignWorker() (Status, error) {
	if s != SellerAccepted {
		return 0, errs.NewInvalidStateError("order", s.String(), "assign worker")
	}
	return WorkerAssigned, nil
}

// PickUp transitions WorkerAssigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != WorkerAssigned {
		return 0, errs.NewInvalidStateError("order", s.String(), "verify pickup")
	}
	return PickedUp, nil
}

// Complete transitions PickedUp -> Completed.
func (s Status) Complete() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidStateError("order", s.String(), "verify delivery")
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status -> Cancelled.
// Terminal orders (Completed, Cancelled) cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("order", s.String(), "cancel")
	}
	return Cancelled, nil
}
