package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/audit"
)

// RegisterProfileCommandHandler handles profile registration.
type RegisterProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRegisterProfileCommandHandler creates a handler for profile registration operations.
func NewRegisterProfileCommandHandler(uowFactory ProfileUoWFactory) RegisterProfileCommandHandler {
	return RegisterProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile registration command.
// The audit entry records the new profile as its own actor.
func (h RegisterProfileCommandHandler) Handle(ctx context.Context, cmd RegisterProfileCommand) error {
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

	profile, err := account.NewProfile(cmd.ProfileID(), cmd.Name(), cmd.Email(), cmd.Roles())
	if err != nil {
		return err
	}

	if err = uow.ProfileRepository().Add(ctx, profile); err != nil {
		return err
	}

	roles := make([]string, 0, len(profile.Roles()))
	for _, role := range profile.Roles() {
		roles = append(roles, role.String())
	}

	meta := map[string]any{
		"roles": roles,
	}
	if err = recordAudit(ctx, uow.AuditRepository(), profile.ID(),
		audit.ActionProfileRegistered, audit.EntityTypeProfile, profile.ID(), meta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
