package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for profile aggregates.
type ProfileRepository interface {
	// Add persists a new profile aggregate to storage.
	Add(ctx context.Context, aggregate *account.Profile) error

	// Get retrieves a profile aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)
}
