// Package account contains the Profile aggregate: the persisted identity of
// every actor on the marketplace. There is no implicit "current user" in the
// core; every operation receives an explicit profile identifier that resolves
// to one of these records.
package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile instance was not
	// created through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile constructor")
)

// Profile is a marketplace identity carrying a set of roles. Role membership
// alone never authorizes an action on a specific order; ownership checks are
// applied on top by the access policy.
type Profile struct {
	id    kernel.UUID
	name  string
	email string
	roles []Role

	isConstructed bool
}

// NewProfile creates a profile with at least one valid role.
// Duplicate roles are collapsed.
func NewProfile(id kernel.UUID, name string, email string, roles []Role) (*Profile, error) {
	p := &Profile{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(id kernel.UUID, name string, email string, roles []Role) (*Profile, error) {
	return NewProfile(id, name, email, roles)
}

// Validate ensures the Profile instance was properly constructed.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// IsEqual compares two profiles by their unique identifiers.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Profile) Name() string {
	return p.name
}

// Email returns the contact email.
func (p *Profile) Email() string {
	return p.email
}

// Roles returns a copy of the profile's roles.
func (p *Profile) Roles() []Role {
	roles := make([]Role, len(p.roles))
	copy(roles, p.roles)
	return roles
}

// HasRole reports whether the profile holds the given role.
func (p *Profile) HasRole(role Role) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Profile) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Profile) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	seen := make(map[Role]bool, len(roles))
	deduped := make([]Role, 0, len(roles))
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
		if !seen[role] {
			seen[role] = true
			deduped = append(deduped, role)
		}
	}

	p.roles = deduped
	return nil
}
