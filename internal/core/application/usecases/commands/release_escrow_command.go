package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrReleaseEscrowCommandIsNotConstructed = errors.New(
	"ReleaseEscrowCommand must be created via NewReleaseEscrowCommand constructor",
)

// ReleaseEscrowCommand represents an admin override paying held funds out to
// the seller without completing the delivery flow. The order keeps its status;
// the terminal escrow closes it logically.
type ReleaseEscrowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseEscrowCommand creates a command to release an order's escrow.
func NewReleaseEscrowCommand(orderID kernel.UUID, actorID kernel.UUID) (ReleaseEscrowCommand, error) {
	cmd := ReleaseEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ReleaseEscrowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseEscrowCommand) Validate() error {
	return c.guard.Validate(ErrReleaseEscrowCommandIsNotConstructed)
}

// OrderID returns the order whose escrow is released.
func (c ReleaseEscrowCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting admin's profile identifier.
func (c ReleaseEscrowCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReleaseEscrowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReleaseEscrowCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
