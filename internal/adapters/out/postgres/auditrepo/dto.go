// Package auditrepo provides the database representation and repository for
// audit entries. The audit trail is append-only: rows are inserted in the
// same transaction as the change they describe and never updated or deleted.
package auditrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorProfileID uuid.UUID `gorm:"type:uuid;index"`
	Action         string    `gorm:"type:varchar(64)"`
	EntityType     string    `gorm:"type:varchar(32);index:idx_audit_entity"`
	EntityID       uuid.UUID `gorm:"type:uuid;index:idx_audit_entity"`
	Meta           string    `gorm:"type:jsonb"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) (EntryDTO, error) {
	raw, err := json.Marshal(entry.Meta())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:             entry.ID().Bytes(),
		ActorProfileID: entry.ActorProfileID().Bytes(),
		Action:         entry.Action(),
		EntityType:     entry.EntityType(),
		EntityID:       entry.EntityID().Bytes(),
		Meta:           string(raw),
		CreatedAt:      entry.CreatedAt(),
	}, nil
}
