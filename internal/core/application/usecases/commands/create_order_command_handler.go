package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order and freezes an escrow for the full amount in one
// transaction, so the order becomes visible only in PaymentFrozen status.
type CreateOrderCommandHandler struct {
	uowFactory OrderFlowUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderFlowUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Validates the buyer, the product ownership and stock, computes the total
// from the product's current price, and creates the order together with its
// frozen escrow atomically.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := loadActor(ctx, uow.ProfileRepository(), cmd.BuyerID(), "create order")
	if err != nil {
		return err
	}
	if !buyer.HasRole(account.RoleBuyer) {
		return errs.NewUnauthorizedError(cmd.BuyerID().String(), "create order")
	}

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !prod.IsSoldBy(cmd.SellerID()) {
		return errs.NewValueIsInvalidError("sellerID")
	}
	if !prod.IsActive() {
		return errs.NewInvalidStateError("product", "inactive", "order")
	}
	if cmd.Quantity() > prod.Stock() {
		return errs.NewValueIsOutOfRangeError("quantity", cmd.Quantity(), 1, prod.Stock())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), cmd.SellerID(), cmd.ProductID(), prod.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	newEscrow, err := escrow.NewEscrow(kernel.NewUUID(), newOrder.ID(), newOrder.Total())
	if err != nil {
		return err
	}

	if err = newOrder.MarkPaymentFrozen(newEscrow.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}
	if err = uow.EscrowRepository().Add(ctx, newEscrow); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": order.PendingPayment.String(),
		"newStatus":      newOrder.Status().String(),
		"amount":         newEscrow.Amount().AmountCents(),
		"currency":       newEscrow.Amount().Currency(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.BuyerID(),
		audit.ActionOrderCreated, audit.EntityTypeOrder, newOrder.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
