// Package escrowrepo provides the database representation and repository for
// escrow aggregates.
package escrowrepo

import (
	"time"

	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EscrowDTO represents the database structure for persisting escrow
// aggregates. Each escrow holds the frozen funds of exactly one order.
type EscrowDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AmountCents int64     `gorm:""`
	Currency    string    `gorm:"type:varchar(3)"`
	Status      int       `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for escrow entities.
func (EscrowDTO) TableName() string {
	return "escrows"
}

func fromDomain(aggregate *escrow.Escrow) EscrowDTO {
	return EscrowDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		AmountCents: aggregate.Amount().AmountCents(),
		Currency:    aggregate.Amount().Currency(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto EscrowDTO) (*escrow.Escrow, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountCents, dto.Currency)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreEscrow(id, orderID, amount, escrow.Status(dto.Status))
}
