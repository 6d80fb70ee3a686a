package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// VerifyDeliveryCommandHandler handles delivery verification by the buyer.
// This is the transition that moves money: order completion, escrow release
// and assignment delivery land in one transaction or not at all.
type VerifyDeliveryCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewVerifyDeliveryCommandHandler creates a handler for delivery verification operations.
func NewVerifyDeliveryCommandHandler(uowFactory OrderFlowUoWFactory) VerifyDeliveryCommandHandler {
	return VerifyDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the delivery verification command.
// The actor must be the order's buyer; the submitted code must match the
// stored delivery code exactly. On success the order completes, the escrow
// is released to the seller and the assignment is marked delivered.
func (h VerifyDeliveryCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "verify delivery")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if h.policy.RoleFor(actor, theOrder, nil) != services.OrderRoleBuyer {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "verify delivery")
	}

	theEscrow, err := uow.EscrowRepository().GetByOrderID(ctx, theOrder.ID())
	if err != nil {
		return err
	}
	theAssignment, err := uow.AssignmentRepository().GetByOrderID(ctx, theOrder.ID())
	if err != nil {
		return err
	}

	previousStatus := theOrder.Status()
	if err = theOrder.VerifyDelivery(cmd.Code()); err != nil {
		return err
	}
	if err = theEscrow.Release(); err != nil {
		return err
	}
	if err = theAssignment.MarkDelivered(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}
	if err = uow.EscrowRepository().Update(ctx, theEscrow); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Update(ctx, theAssignment); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      theOrder.Status().String(),
		"amount":         theEscrow.Amount().AmountCents(),
		"currency":       theEscrow.Amount().Currency(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionDeliveryVerified, audit.EntityTypeOrder, theOrder.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
