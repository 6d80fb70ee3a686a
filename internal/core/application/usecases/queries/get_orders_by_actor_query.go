package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersByActorQueryIsNotConstructed = errors.New(
	"GetOrdersByActorQuery must be created via NewGetOrdersByActorQuery constructor",
)

// Actor roles accepted by GetOrdersByActorQuery.
const (
	ActorRoleBuyer  = "buyer"
	ActorRoleSeller = "seller"
	ActorRoleWorker = "worker"
)

// GetOrdersByActorQuery lists the orders an actor participates in, in one of
// their roles: as buyer, as seller, or as the assigned delivery worker.
type GetOrdersByActorQuery struct {
	actorID kernel.UUID
	role    string

	guard guard.ConstructorGuard
}

// NewGetOrdersByActorQuery creates a query listing an actor's orders.
// Role must be one of buyer, seller or worker.
func NewGetOrdersByActorQuery(actorID kernel.UUID, role string) (GetOrdersByActorQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetOrdersByActorQuery{}, err
	}

	switch role {
	case ActorRoleBuyer, ActorRoleSeller, ActorRoleWorker:
	default:
		return GetOrdersByActorQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetOrdersByActorQuery{
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByActorQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByActorQueryIsNotConstructed)
}

// ActorID returns the actor whose orders are listed.
func (q GetOrdersByActorQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns which side of the orders the actor is on.
func (q GetOrdersByActorQuery) Role() string {
	return q.role
}

// GetOrdersByActorQueryResponse is one row of the actor's order list.
// The code fields are populated for the worker role only; a worker needs the
// pickup code to collect the goods and the delivery code to hand to the buyer.
type GetOrdersByActorQueryResponse struct {
	ID           kernel.UUID `json:"id"`
	BuyerID      kernel.UUID `json:"buyerId"`
	SellerID     kernel.UUID `json:"sellerId"`
	ProductID    kernel.UUID `json:"productId"`
	Quantity     int         `json:"quantity"`
	TotalCents   int64       `json:"totalCents"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	PickupCode   string      `json:"pickupCode,omitempty"`
	DeliveryCode string      `json:"deliveryCode,omitempty"`
}
