package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
)

// GetAuditTrailQueryHandler retrieves an entity's audit history from the database.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query, returning entries oldest first so the trail
// reads as the entity's history.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_profile_id,
			action,
			entity_type,
			entity_id,
			meta,
			created_at
		FROM audit_entries
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at
	`, query.EntityType(), query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAuditTrailQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetAuditTrailQueryResponse

			id, actorID, entityID uuid.UUID
			meta                  []byte
			createdAt             time.Time
		)

		if err = rows.Scan(
			&id, &actorID, &resp.Action, &resp.EntityType, &entityID, &meta, &createdAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ActorProfileID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		if resp.EntityID, err = kernel.UUIDFromBytes(entityID[:]); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err = json.Unmarshal(meta, &resp.Meta); err != nil {
				return nil, err
			}
		}
		resp.CreatedAt = createdAt

		entries = append(entries, resp)
	}

	return entries, rows.Err()
}
