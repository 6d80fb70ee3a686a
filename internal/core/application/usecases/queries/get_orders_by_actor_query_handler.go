package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetOrdersByActorQueryHandler lists orders by participant role.
type GetOrdersByActorQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByActorQueryHandler creates a handler for actor order listings.
func NewGetOrdersByActorQueryHandler(db *gorm.DB) GetOrdersByActorQueryHandler {
	return GetOrdersByActorQueryHandler{db: db}
}

// Handle executes the query. Worker listings go through the assignments
// table, since the worker is not stored on the order row itself, and include
// the verification codes the worker needs in the field.
func (h GetOrdersByActorQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByActorQuery,
) ([]GetOrdersByActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const columns = `
		o.id,
		o.buyer_id,
		o.seller_id,
		o.product_id,
		o.quantity,
		o.total_cents,
		o.currency,
		o.status,
		o.created_at
	`

	forWorker := query.Role() == ActorRoleWorker

	var sql string
	switch query.Role() {
	case ActorRoleBuyer:
		sql = `SELECT ` + columns + ` FROM orders o WHERE o.buyer_id = ? ORDER BY o.created_at DESC`
	case ActorRoleSeller:
		sql = `SELECT ` + columns + ` FROM orders o WHERE o.seller_id = ? ORDER BY o.created_at DESC`
	case ActorRoleWorker:
		sql = `SELECT ` + columns + `, o.pickup_code, o.delivery_code
			FROM orders o
			JOIN assignments a ON a.order_id = o.id
			WHERE a.worker_id = ?
			ORDER BY o.created_at DESC`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, query.ActorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersByActorQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetOrdersByActorQueryResponse

			id, buyerID, sellerID, productID uuid.UUID
			status                           int
			createdAt                        time.Time
		)

		dest := []any{
			&id, &buyerID, &sellerID, &productID,
			&resp.Quantity, &resp.TotalCents, &resp.Currency, &status, &createdAt,
		}
		if forWorker {
			dest = append(dest, &resp.PickupCode, &resp.DeliveryCode)
		}

		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}
