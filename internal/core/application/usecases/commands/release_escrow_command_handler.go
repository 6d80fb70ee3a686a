package commands

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ReleaseEscrowCommandHandler handles the admin escrow release override.
type ReleaseEscrowCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
}

// NewReleaseEscrowCommandHandler creates a handler for escrow release operations.
func NewReleaseEscrowCommandHandler(uowFactory OrderFlowUoWFactory) ReleaseEscrowCommandHandler {
	return ReleaseEscrowCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the escrow release command.
// Admin only. The order row is locked so the release serializes against any
// concurrent transition touching the same order's escrow.
func (h ReleaseEscrowCommandHandler) Handle(ctx context.Context, cmd ReleaseEscrowCommand) error {
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

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "release escrow")
	if err != nil {
		return err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if h.policy.RoleFor(actor, theOrder, nil) != services.OrderRoleAdmin {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), "release escrow")
	}

	theEscrow, err := uow.EscrowRepository().GetByOrderID(ctx, theOrder.ID())
	if err != nil {
		return err
	}

	previousStatus := theEscrow.Status()
	if err = theEscrow.Release(); err != nil {
		return err
	}

	if err = uow.EscrowRepository().Update(ctx, theEscrow); err != nil {
		return err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      escrow.Released.String(),
		"amount":         theEscrow.Amount().AmountCents(),
		"currency":       theEscrow.Amount().Currency(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionEscrowReleased, audit.EntityTypeEscrow, theEscrow.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
