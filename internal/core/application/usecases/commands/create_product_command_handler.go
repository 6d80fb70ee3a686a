package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// CreateProductCommandHandler handles product listing.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product listing operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product listing command.
// The seller must be a registered profile holding the seller role.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	seller, err := loadActor(ctx, uow.ProfileRepository(), cmd.SellerID(), "create product")
	if err != nil {
		return err
	}
	if !seller.HasRole(account.RoleSeller) {
		return errs.NewUnauthorizedError(cmd.SellerID().String(), "create product")
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(), cmd.SellerID(), cmd.Title(), cmd.Description(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	meta := map[string]any{
		"price":    cmd.Price().AmountCents(),
		"currency": cmd.Price().Currency(),
		"stock":    cmd.Stock(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.SellerID(),
		audit.ActionProductCreated, audit.EntityTypeProduct, newProduct.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
