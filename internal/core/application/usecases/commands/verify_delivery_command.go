package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyDeliveryCommandIsNotConstructed = errors.New(
	"VerifyDeliveryCommand must be created via NewVerifyDeliveryCommand constructor",
)

// VerifyDeliveryCommand represents the buyer's confirmation of delivery,
// submitted as the one-time delivery code. A successful verification
// completes the order and releases the escrow to the seller.
type VerifyDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryCommand creates a command to verify a delivery code.
func NewVerifyDeliveryCommand(orderID kernel.UUID, actorID kernel.UUID, code string) (VerifyDeliveryCommand, error) {
	cmd := VerifyDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setCode(code),
	); err != nil {
		return VerifyDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c VerifyDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting profile identifier.
func (c VerifyDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Code returns the submitted delivery code.
func (c VerifyDeliveryCommand) Code() string {
	return c.code
}

func (c *VerifyDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *VerifyDeliveryCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
