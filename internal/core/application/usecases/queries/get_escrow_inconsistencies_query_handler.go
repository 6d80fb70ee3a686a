package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetEscrowInconsistenciesQueryHandler runs the reconciliation sweep.
type GetEscrowInconsistenciesQueryHandler struct {
	db *gorm.DB
}

// NewGetEscrowInconsistenciesQueryHandler creates a handler for the reconciliation query.
func NewGetEscrowInconsistenciesQueryHandler(db *gorm.DB) GetEscrowInconsistenciesQueryHandler {
	return GetEscrowInconsistenciesQueryHandler{db: db}
}

// Handle executes the sweep. Each returned row is one invariant violation.
func (h GetEscrowInconsistenciesQueryHandler) Handle(
	ctx context.Context,
	query GetEscrowInconsistenciesQuery,
) ([]GetEscrowInconsistenciesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ? AS kind, e.id, e.order_id, e.amount_cents, o.total_cents
		FROM escrows e
		JOIN orders o ON o.id = e.order_id
		WHERE e.amount_cents != o.total_cents
		UNION ALL
		SELECT ?, e.id, e.order_id, e.amount_cents, o.total_cents
		FROM escrows e
		JOIN orders o ON o.id = e.order_id
		WHERE o.status = ? AND e.status != ?
		UNION ALL
		SELECT ?, e.id, e.order_id, e.amount_cents, o.total_cents
		FROM escrows e
		JOIN orders o ON o.id = e.order_id
		WHERE o.status = ? AND e.status = ?
		UNION ALL
		SELECT ?, e.id, e.order_id, e.amount_cents, 0
		FROM escrows e
		LEFT JOIN orders o ON o.id = e.order_id
		WHERE o.id IS NULL
	`,
		InconsistencyAmountMismatch,
		InconsistencyCompletedFrozen, order.Completed, escrow.Released,
		InconsistencyCancelledFrozen, order.Cancelled, escrow.Frozen,
		InconsistencyOrphanedEscrow,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	violations := make([]GetEscrowInconsistenciesQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetEscrowInconsistenciesQueryResponse

			escrowID, orderID uuid.UUID
		)

		if err = rows.Scan(
			&resp.Kind, &escrowID, &orderID, &resp.AmountCents, &resp.TotalCents,
		); err != nil {
			return nil, err
		}

		if resp.EscrowID, err = kernel.UUIDFromBytes(escrowID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		violations = append(violations, resp)
	}

	return violations, rows.Err()
}
