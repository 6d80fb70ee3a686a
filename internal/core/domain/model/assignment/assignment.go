// Package assignment contains the Assignment aggregate: the record of one
// worker's engagement with one order's delivery. An order has at most one
// active assignment; there is no reassignment after a worker is engaged.
package assignment

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor")
)

// Assignment tracks a worker's acceptance/pickup/delivery progress for one
// order. It is subordinate to the order: it never decides business rules on
// its own and is only mutated by the order workflow, not by external actors
// directly.
type Assignment struct {
	id       kernel.UUID
	orderID  kernel.UUID
	workerID kernel.UUID
	status   Status

	isConstructed bool
}

// NewAssignment engages a worker with an order, starting in Requested.
func NewAssignment(id kernel.UUID, orderID kernel.UUID, workerID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	workerID kernel.UUID,
	status Status,
) (*Assignment, error) {
	a := &Assignment{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	a.status = status

	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the ID of the order being delivered.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// WorkerID returns the profile ID of the engaged worker.
func (a *Assignment) WorkerID() kernel.UUID {
	return a.workerID
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// IsHeldBy reports whether the given profile is the engaged worker.
func (a *Assignment) IsHeldBy(workerID kernel.UUID) bool {
	return a.workerID.IsEqual(workerID)
}

// MarkAccepted records the worker's acknowledgement of the assignment.
func (a *Assignment) MarkAccepted() error {
	newStatus, err := a.status.Accept()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// MarkPickedUp records that pickup was verified for this assignment.
func (a *Assignment) MarkPickedUp() error {
	newStatus, err := a.status.PickUp()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// MarkDelivered records that delivery was verified for this assignment.
func (a *Assignment) MarkDelivered() error {
	newStatus, err := a.status.Deliver()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	a.workerID = workerID
	return nil
}
