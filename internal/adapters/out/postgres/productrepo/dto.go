// Package productrepo provides the database representation and repository
// for product aggregates.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID    uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	PriceCents  int64     `gorm:""`
	Currency    string    `gorm:"type:varchar(3)"`
	Stock       int       `gorm:""`
	IsActive    bool      `gorm:""`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		SellerID:    aggregate.SellerID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		PriceCents:  aggregate.Price().AmountCents(),
		Currency:    aggregate.Price().Currency(),
		Stock:       aggregate.Stock(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents, dto.Currency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, sellerID, dto.Title, dto.Description, price, dto.Stock, dto.IsActive)
}
