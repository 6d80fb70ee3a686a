package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// RefundEscrowCommandHandler handles the admin escrow refund override.
// Refunding cancels the linked order; the two changes commit together.
type RefundEscrowCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewRefundEscrowCommandHandler creates a handler for escrow refund operations.
func NewRefundEscrowCommandHandler(uowFactory OrderFlowUoWFactory) RefundEscrowCommandHandler {
	return RefundEscrowCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the escrow refund command. Admin only.
func (h RefundEscrowCommandHandler) Handle(ctx context.Context, cmd RefundEscrowCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "refund escrow")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if h.policy.RoleFor(actor, theOrder, nil) != services.OrderRoleAdmin {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "refund escrow")
	}

	theEscrow, err := uow.EscrowRepository().GetByOrderID(ctx, theOrder.ID())
	if err != nil {
		return err
	}

	previousEscrowStatus := theEscrow.Status()
	if err = theEscrow.Refund(); err != nil {
		return err
	}
	if err = theOrder.Cancel(); err != nil {
		return err
	}

	if err = uow.EscrowRepository().Update(ctx, theEscrow); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousEscrowStatus.String(),
		"newStatus":      escrow.Refunded.String(),
		"amount":         theEscrow.Amount().AmountCents(),
		"currency":       theEscrow.Amount().Currency(),
	}
	if cmd.Reason() != "" {
		meta["reason"] = cmd.Reason()
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionEscrowRefunded, audit.EntityTypeEscrow, theEscrow.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
