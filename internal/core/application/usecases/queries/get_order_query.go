// Package queries contains the read side of the CQRS split: handlers that
// query the database directly and return denormalized read models, bypassing
// the aggregates and repositories used by the write side.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order together with its escrow and assignment.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// EscrowView is the read model of an order's escrow.
type EscrowView struct {
	ID          kernel.UUID `json:"id"`
	AmountCents int64       `json:"amountCents"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
}

// AssignmentView is the read model of an order's delivery assignment.
type AssignmentView struct {
	ID       kernel.UUID `json:"id"`
	WorkerID kernel.UUID `json:"workerId"`
	Status   string      `json:"status"`
}

// GetOrderQueryResponse is the full order view returned to clients.
// Escrow and Assignment are nil while the order has not reached the
// corresponding lifecycle step.
type GetOrderQueryResponse struct {
	ID             kernel.UUID     `json:"id"`
	BuyerID        kernel.UUID     `json:"buyerId"`
	SellerID       kernel.UUID     `json:"sellerId"`
	ProductID      kernel.UUID     `json:"productId"`
	Quantity       int             `json:"quantity"`
	ItemPriceCents int64           `json:"itemPriceCents"`
	TotalCents     int64           `json:"totalCents"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	Escrow         *EscrowView     `json:"escrow,omitempty"`
	Assignment     *AssignmentView `json:"assignment,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
