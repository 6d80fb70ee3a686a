package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRefundEscrowCommandIsNotConstructed = errors.New(
	"RefundEscrowCommand must be created via NewRefundEscrowCommand constructor",
)

// RefundEscrowCommand represents an admin override returning held funds to
// the buyer. The linked order is cancelled in the same transaction.
type RefundEscrowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundEscrowCommand creates a command to refund an order's escrow.
// The reason may be empty.
func NewRefundEscrowCommand(orderID kernel.UUID, actorID kernel.UUID, reason string) (RefundEscrowCommand, error) {
	cmd := RefundEscrowCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return RefundEscrowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundEscrowCommand) Validate() error {
	return c.guard.Validate(ErrRefundEscrowCommandIsNotConstructed)
}

// OrderID returns the order whose escrow is refunded.
func (c RefundEscrowCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting admin's profile identifier.
func (c RefundEscrowCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional refund reason.
func (c RefundEscrowCommand) Reason() string {
	return c.reason
}

func (c *RefundEscrowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundEscrowCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
