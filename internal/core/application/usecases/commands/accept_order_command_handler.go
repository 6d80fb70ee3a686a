package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles the seller's acceptance of a paid order.
type AcceptOrderCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(uowFactory OrderFlowUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the acceptance command.
// Only the order's seller may accept, and only from PaymentFrozen status.
// The order row is locked for the whole transition, so a concurrent accept
// on the same order fails with an invalid-state error instead of applying twice.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "accept order")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if h.policy.RoleFor(actor, theOrder, nil) != services.OrderRoleSeller {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "accept order")
	}

	previousStatus := theOrder.Status()
	if err = theOrder.Accept(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      theOrder.Status().String(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionOrderAccepted, audit.EntityTypeOrder, theOrder.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
