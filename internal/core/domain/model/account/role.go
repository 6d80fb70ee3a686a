package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is a capability a profile holds on the marketplace. A profile may hold
// several roles at once (a seller can also buy).
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer may create orders, verify delivery, and cancel own orders.
	RoleBuyer

	// RoleSeller may list products, accept orders, assign workers, and cancel
	// own orders.
	RoleSeller

	// RoleWorker may verify pickup for assignments held.
	RoleWorker

	// RoleAdmin may release or refund any escrow and cancel any order.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
		RoleWorker:  "worker",
		RoleAdmin:   "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleBuyer:  "buyer",
		RoleSeller: "seller",
		RoleWorker: "worker",
		RoleAdmin:  "admin",
	}
}

// Validate checks that the Role is one of the defined capabilities.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a wire name back into a Role.
func RoleFromString(raw string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == raw {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", raw))
}
