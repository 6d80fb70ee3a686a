package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a seller's request to hand the order to a
// delivery worker. Assignment generates the pickup and delivery codes.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker to an order.
func NewAssignWorkerCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	workerID kernel.UUID,
) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// OrderID returns the order receiving a worker.
func (c AssignWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting profile identifier.
func (c AssignWorkerCommand) ActorID() kernel.UUID {
	return c.actorID
}

// WorkerID returns the worker being assigned.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AssignWorkerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWorkerCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
