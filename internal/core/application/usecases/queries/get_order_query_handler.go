package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order view from the database.
// The pickup and delivery codes are deliberately not part of this view;
// the assign response returns them to the seller, and worker listings
// carry them for the assigned worker.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query, joining the order with its escrow and
// assignment when they exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.seller_id,
			o.product_id,
			o.quantity,
			o.item_price_cents,
			o.total_cents,
			o.currency,
			o.status,
			o.created_at,
			o.updated_at,
			e.id,
			e.amount_cents,
			e.currency,
			e.status,
			a.id,
			a.worker_id,
			a.status
		FROM orders o
		LEFT JOIN escrows e ON e.order_id = o.id
		LEFT JOIN assignments a ON a.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var (
		resp GetOrderQueryResponse

		id, buyerID, sellerID, productID uuid.UUID
		status                           int
		createdAt, updatedAt             time.Time

		escrowID         uuid.NullUUID
		escrowAmount     sql.NullInt64
		escrowCurrency   sql.NullString
		escrowStatus     sql.NullInt64
		assignmentID     uuid.NullUUID
		workerID         uuid.NullUUID
		assignmentStatus sql.NullInt64
	)

	if err = rows.Scan(
		&id, &buyerID, &sellerID, &productID,
		&resp.Quantity, &resp.ItemPriceCents, &resp.TotalCents, &resp.Currency, &status,
		&createdAt, &updatedAt,
		&escrowID, &escrowAmount, &escrowCurrency, &escrowStatus,
		&assignmentID, &workerID, &assignmentStatus,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	if escrowID.Valid {
		view := EscrowView{
			AmountCents: escrowAmount.Int64,
			Currency:    escrowCurrency.String,
			Status:      escrow.Status(escrowStatus.Int64).String(),
		}
		if view.ID, err = kernel.UUIDFromBytes(escrowID.UUID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Escrow = &view
	}

	if assignmentID.Valid {
		view := AssignmentView{
			Status: assignment.Status(assignmentStatus.Int64).String(),
		}
		if view.ID, err = kernel.UUIDFromBytes(assignmentID.UUID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if view.WorkerID, err = kernel.UUIDFromBytes(workerID.UUID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Assignment = &view
	}

	return resp, rows.Err()
}
