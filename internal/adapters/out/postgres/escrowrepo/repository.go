package escrowrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEscrowRepository creates a new GORM escrow repository.
func NewGormEscrowRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowRepository {
	return &GormEscrowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new escrow to the database.
func (r *GormEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing escrow to the database. Only the status column is
// mutable; the held amount never changes after the freeze.
func (r *GormEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EscrowDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an escrow by ID.
func (r *GormEscrowRepository) Get(ctx context.Context, id kernel.UUID) (*escrow.Escrow, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EscrowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the escrow holding funds for the given order.
func (r *GormEscrowRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Escrow, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto EscrowDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
