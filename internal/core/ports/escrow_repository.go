package ports

import (
	"context"

	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
)

// EscrowRepository defines the persistence contract for escrow aggregates.
type EscrowRepository interface {
	// Add persists a new escrow aggregate to storage.
	Add(ctx context.Context, aggregate *escrow.Escrow) error

	// Update persists changes to an existing escrow aggregate.
	Update(ctx context.Context, aggregate *escrow.Escrow) error

	// Get retrieves an escrow aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*escrow.Escrow, error)

	// GetByOrderID retrieves the escrow holding funds for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Escrow, error)
}
