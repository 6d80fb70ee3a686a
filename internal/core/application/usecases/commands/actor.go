package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// loadActor resolves the acting profile. An unknown actor identity is reported
// as an authorization failure rather than a missing object, so callers cannot
// enumerate which profile IDs exist.
func loadActor(
	ctx context.Context,
	repo ports.ProfileRepository,
	actorID kernel.UUID,
	action string,
) (*account.Profile, error) {
	actor, err := repo.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnauthorizedError(actorID.String(), action)
	}
	if err != nil {
		return nil, err
	}

	return actor, nil
}
