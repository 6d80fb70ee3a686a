package ports

import (
	"context"

	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetByOrderID retrieves the assignment for the given order.
	// An order carries at most one assignment for its whole lifetime.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)
}
