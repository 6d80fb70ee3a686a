// Package orderrepo provides the database representation and repository for
// order aggregates, handling conversion between domain entities and rows.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary values are stored as integer cents alongside their currency code.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID        uuid.UUID  `gorm:"type:uuid;index"`
	SellerID       uuid.UUID  `gorm:"type:uuid;index"`
	ProductID      uuid.UUID  `gorm:"type:uuid"`
	Quantity       int        `gorm:""`
	ItemPriceCents int64      `gorm:""`
	TotalCents     int64      `gorm:""`
	Currency       string     `gorm:"type:varchar(3)"`
	Status         int        `gorm:"index"`
	EscrowID       *uuid.UUID `gorm:"type:uuid"`
	PickupCode     string     `gorm:"type:varchar(16)"`
	DeliveryCode   string     `gorm:"type:varchar(16)"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var escrowID *uuid.UUID
	if id := aggregate.EscrowID(); id != nil {
		raw := id.Bytes()
		escrowID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		BuyerID:        aggregate.BuyerID().Bytes(),
		SellerID:       aggregate.SellerID().Bytes(),
		ProductID:      aggregate.ProductID().Bytes(),
		Quantity:       aggregate.Quantity(),
		ItemPriceCents: aggregate.ItemPrice().AmountCents(),
		TotalCents:     aggregate.Total().AmountCents(),
		Currency:       aggregate.Total().Currency(),
		Status:         int(aggregate.Status()),
		EscrowID:       escrowID,
		PickupCode:     aggregate.PickupCode(),
		DeliveryCode:   aggregate.DeliveryCode(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder, which revalidates the stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var escrowID *kernel.UUID
	if dto.EscrowID != nil {
		eID, escrowErr := kernel.UUIDFromBytes((*dto.EscrowID)[:])
		if escrowErr != nil {
			return nil, escrowErr
		}

		escrowID = &eID
	}

	itemPrice, err := kernel.NewMoney(dto.ItemPriceCents, dto.Currency)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		buyerID,
		sellerID,
		productID,
		itemPrice,
		total,
		dto.Quantity,
		order.Status(dto.Status),
		escrowID,
		dto.PickupCode,
		dto.DeliveryCode,
	)
}
