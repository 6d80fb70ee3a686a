package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyPickupCommandIsNotConstructed = errors.New(
	"VerifyPickupCommand must be created via NewVerifyPickupCommand constructor",
)

// VerifyPickupCommand represents a worker's proof of picking up the goods,
// submitted as the one-time pickup code.
type VerifyPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewVerifyPickupCommand creates a command to verify a pickup code.
func NewVerifyPickupCommand(orderID kernel.UUID, actorID kernel.UUID, code string) (VerifyPickupCommand, error) {
	cmd := VerifyPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setCode(code),
	); err != nil {
		return VerifyPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPickupCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPickupCommandIsNotConstructed)
}

// OrderID returns the order being picked up.
func (c VerifyPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting profile identifier.
func (c VerifyPickupCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Code returns the submitted pickup code.
func (c VerifyPickupCommand) Code() string {
	return c.code
}

func (c *VerifyPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPickupCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *VerifyPickupCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
