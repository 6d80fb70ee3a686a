package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Any non-terminal order may be cancelled by its buyer, its seller or an
// admin; held funds are refunded to the buyer in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderFlowUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "cancel order")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch h.policy.RoleFor(actor, theOrder, nil) {
	case services.OrderRoleBuyer, services.OrderRoleSeller, services.OrderRoleAdmin:
	default:
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "cancel order")
	}

	previousStatus := theOrder.Status()
	if err = theOrder.Cancel(); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      theOrder.Status().String(),
	}
	if cmd.Reason() != "" {
		meta["reason"] = cmd.Reason()
	}

	if theOrder.EscrowID() != nil {
		theEscrow, escrowErr := uow.EscrowRepository().GetByOrderID(ctx, theOrder.ID())
		if escrowErr != nil {
			return escrowErr
		}
		if escrowErr = theEscrow.Refund(); escrowErr != nil {
			return escrowErr
		}
		if escrowErr = uow.EscrowRepository().Update(ctx, theEscrow); escrowErr != nil {
			return escrowErr
		}
		meta["amount"] = theEscrow.Amount().AmountCents()
		meta["currency"] = theEscrow.Amount().Currency()
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}

	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionOrderCancelled, audit.EntityTypeOrder, theOrder.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
