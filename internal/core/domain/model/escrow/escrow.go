// Package escrow contains the Escrow aggregate: funds held by the platform
// for exactly one order until a delivery condition is verified or the order
// is cancelled.
package escrow

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrEscrowIsNotConstructed is returned when an Escrow instance was not
	// created through NewEscrow or RestoreEscrow.
	ErrEscrowIsNotConstructed = errors.New("Escrow must be created via NewEscrow or RestoreEscrow constructor")
)

// Escrow holds a frozen amount for one order. The amount is captured at
// freeze time and is immutable for the lifetime of the escrow; only the
// status ever changes, and only along Frozen -> Released or Frozen ->
// Refunded.
type Escrow struct {
	id      kernel.UUID
	orderID kernel.UUID
	amount  kernel.Money
	status  Status

	isConstructed bool
}

// NewEscrow freezes funds for an order. The amount must be strictly positive:
// a zero-value escrow cannot hold anything and is rejected.
func NewEscrow(id kernel.UUID, orderID kernel.UUID, amount kernel.Money) (*Escrow, error) {
	e := &Escrow{
		status:        Frozen,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEscrow reconstructs an escrow from persistence.
func RestoreEscrow(id kernel.UUID, orderID kernel.UUID, amount kernel.Money, status Status) (*Escrow, error) {
	e := &Escrow{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setAmount(amount),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	e.status = status

	return e, nil
}

// Validate ensures the Escrow instance was properly constructed.
func (e *Escrow) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEscrowIsNotConstructed
	}
	return nil
}

// IsEqual compares two escrows by their unique identifiers.
func (e *Escrow) IsEqual(other *Escrow) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the escrow's unique identifier.
func (e *Escrow) ID() kernel.UUID {
	return e.id
}

// OrderID returns the ID of the order the funds are held for.
func (e *Escrow) OrderID() kernel.UUID {
	return e.orderID
}

// Amount returns the held amount, fixed at freeze time.
func (e *Escrow) Amount() kernel.Money {
	return e.amount
}

// Status returns the current escrow status.
func (e *Escrow) Status() Status {
	return e.status
}

// Release pays the held funds out to the seller. Fails unless the escrow is
// still Frozen; calling Release after either terminal outcome fails
// deterministically with an invalid-state error.
func (e *Escrow) Release() error {
	newStatus, err := e.status.Release()
	if err != nil {
		return err
	}

	e.status = newStatus
	return nil
}

// Refund returns the held funds to the buyer. Same exclusivity rules as
// Release. The refund reason is recorded in the audit log by the caller, not
// on the escrow itself.
func (e *Escrow) Refund() error {
	newStatus, err := e.status.Refund()
	if err != nil {
		return err
	}

	e.status = newStatus
	return nil
}

func (e *Escrow) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Escrow) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Escrow) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("amount must be greater than zero")
	}
	e.amount = amount
	return nil
}
