package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// VerifyPickupCommandHandler handles pickup verification by the assigned worker.
type VerifyPickupCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewVerifyPickupCommandHandler creates a handler for pickup verification operations.
func NewVerifyPickupCommandHandler(uowFactory OrderFlowUoWFactory) VerifyPickupCommandHandler {
	return VerifyPickupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the pickup verification command.
// The actor must hold the order's assignment; the submitted code must match
// the stored pickup code exactly. Order and assignment advance together.
func (h VerifyPickupCommandHandler) Handle(ctx context.Context, cmd VerifyPickupCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "verify pickup")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	theAssignment, err := uow.AssignmentRepository().GetByOrderID(ctx, theOrder.ID())
	if err != nil {
		return err
	}

	if h.policy.RoleFor(actor, theOrder, theAssignment) != services.OrderRoleWorker {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "verify pickup")
	}

	previousStatus := theOrder.Status()
	if err = theOrder.VerifyPickup(cmd.Code()); err != nil {
		return err
	}
	if err = theAssignment.MarkPickedUp(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Update(ctx, theAssignment); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      theOrder.Status().String(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionPickupVerified, audit.EntityTypeOrder, theOrder.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
