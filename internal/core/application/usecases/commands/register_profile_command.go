package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterProfileCommandIsNotConstructed = errors.New(
	"RegisterProfileCommand must be created via NewRegisterProfileCommand constructor",
)

// RegisterProfileCommand represents a request to register a marketplace
// participant with one or more roles.
type RegisterProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	name      string
	email     string
	roles     []account.Role

	guard guard.ConstructorGuard
}

// NewRegisterProfileCommand creates a command to register a profile.
// Requires a valid ID, non-empty name and email, and at least one valid role.
func NewRegisterProfileCommand(
	profileID kernel.UUID,
	name string,
	email string,
	roles []account.Role,
) (RegisterProfileCommand, error) {
	cmd := RegisterProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRoles(roles),
	); err != nil {
		return RegisterProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProfileCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProfileCommandIsNotConstructed)
}

// ProfileID returns the unique identifier for the new profile.
func (c RegisterProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Name returns the display name.
func (c RegisterProfileCommand) Name() string {
	return c.name
}

// Email returns the contact email.
func (c RegisterProfileCommand) Email() string {
	return c.email
}

// Roles returns the requested roles.
func (c RegisterProfileCommand) Roles() []account.Role {
	return c.roles
}

func (c *RegisterProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}

func (c *RegisterProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterProfileCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterProfileCommand) setRoles(roles []account.Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.roles = roles
	return nil
}
