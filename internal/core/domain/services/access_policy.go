package services

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/order"
)

// OrderRole is the role an actor holds relative to a specific order.
type OrderRole int

const (
	// OrderRoleNone means the actor has no relation to the order.
	OrderRoleNone OrderRole = iota
	// OrderRoleAdmin means the actor carries the admin role.
	OrderRoleAdmin
	// OrderRoleBuyer means the actor is the order's buyer.
	OrderRoleBuyer
	// OrderRoleSeller means the actor is the order's seller.
	OrderRoleSeller
	// OrderRoleWorker means the actor holds the order's active assignment.
	OrderRoleWorker
)

// AccessPolicy resolves which role an actor holds relative to an order.
// Precedence is admin > buyer > seller > worker: an admin who also happens
// to be the buyer is treated as admin, and a buyer or seller holding the
// order's assignment would resolve to their stronger role, not worker.
// Worker assignment rejects the order's buyer and seller as workers, so the
// worker branch is only reachable for a third party.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// RoleFor returns the actor's role relative to the order. The assignment may
// be nil when no worker has been assigned yet.
func (p AccessPolicy) RoleFor(
	actor *account.Profile,
	o *order.Order,
	a *assignment.Assignment,
) OrderRole {
	if actor == nil || o == nil {
		return OrderRoleNone
	}

	if actor.HasRole(account.RoleAdmin) {
		return OrderRoleAdmin
	}
	if o.BuyerID().IsEqual(actor.ID()) {
		return OrderRoleBuyer
	}
	if o.SellerID().IsEqual(actor.ID()) {
		return OrderRoleSeller
	}
	if a != nil && a.IsHeldBy(actor.ID()) {
		return OrderRoleWorker
	}

	return OrderRoleNone
}
