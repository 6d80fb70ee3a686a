// Package profilerepo provides the database representation and repository
// for profile aggregates. Role sets are stored as a JSONB array of role
// names.
package profilerepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profile
// aggregates.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255)"`
	Roles     string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(aggregate *account.Profile) (ProfileDTO, error) {
	roles := aggregate.Roles()
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	raw, err := json.Marshal(names)
	if err != nil {
		return ProfileDTO{}, err
	}

	return ProfileDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Roles: string(raw),
	}, nil
}

func toDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(dto.Roles), &names); err != nil {
		return nil, err
	}

	roles := make([]account.Role, 0, len(names))
	for _, name := range names {
		role, roleErr := account.RoleFromString(name)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return account.RestoreProfile(id, dto.Name, dto.Email, roles)
}
