package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// AssignWorkerResult carries the freshly generated verification codes back
// to the seller, who hands the pickup code to the worker and the delivery
// code to the buyer. This is the only write-side surface that returns them.
type AssignWorkerResult struct {
	PickupCode   string
	DeliveryCode string
}

// AssignWorkerCommandHandler handles worker assignment.
// Generates fresh pickup and delivery codes and opens the order's assignment
// record in a single transaction.
type AssignWorkerCommandHandler struct {
	uowFactory OrderFlowUoWFactory
	policy     services.AccessPolicy
	codes      services.CodeGenerator
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment operations.
func NewAssignWorkerCommandHandler(uowFactory OrderFlowUoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		codes:      services.NewCodeGenerator(),
	}
}

// Handle processes the worker assignment command and returns the generated
// verification codes on success.
// The actor must be the order's seller, the worker must be a registered
// profile holding the worker role, and the order must be in SellerAccepted.
// The worker may not be the order's buyer or seller; those profiles already
// hold a stronger role on the order and could never act as its worker.
func (h AssignWorkerCommandHandler) Handle(
	ctx context.Context, cmd AssignWorkerCommand,
) (AssignWorkerResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignWorkerResult{}, err
	}

	pickupCode, err := h.codes.Generate()
	if err != nil {
		return AssignWorkerResult{}, err
	}
	deliveryCode, err := h.codes.Generate()
	if err != nil {
		return AssignWorkerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AssignWorkerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := loadActor(ctx, uow.ProfileRepository(), cmd.ActorID(), "assign worker")
	if err != nil {
		return AssignWorkerResult{}, err
	}

	theOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return AssignWorkerResult{}, err
	}

	if h.policy.RoleFor(actor, theOrder, nil) != services.OrderRoleSeller {
		return AssignWorkerResult{}, errs.NewUnauthorizedError(cmd.ActorID().String(), "assign worker")
	}

	if cmd.WorkerID().IsEqual(theOrder.BuyerID()) || cmd.WorkerID().IsEqual(theOrder.SellerID()) {
		return AssignWorkerResult{}, errs.NewValueIsInvalidError("workerID")
	}

	worker, err := uow.ProfileRepository().Get(ctx, cmd.WorkerID())
	if err != nil {
		return AssignWorkerResult{}, err
	}
	if !worker.HasRole(account.RoleWorker) {
		return AssignWorkerResult{}, errs.NewValueIsInvalidError("workerID")
	}

	previousStatus := theOrder.Status()
	if err = theOrder.AssignWorker(pickupCode, deliveryCode); err != nil {
		return AssignWorkerResult{}, err
	}

	theAssignment, err := assignment.NewAssignment(kernel.NewUUID(), theOrder.ID(), cmd.WorkerID())
	if err != nil {
		return AssignWorkerResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return AssignWorkerResult{}, err
	}
	if err = uow.AssignmentRepository().Add(ctx, theAssignment); err != nil {
		return AssignWorkerResult{}, err
	}

	meta := map[string]any{
		"previousStatus": previousStatus.String(),
		"newStatus":      theOrder.Status().String(),
		"workerId":       cmd.WorkerID().String(),
	}
	if err = recordAudit(ctx, uow.AuditRepository(), cmd.ActorID(),
		audit.ActionWorkerAssigned, audit.EntityTypeOrder, theOrder.ID(), meta); err != nil {
		return AssignWorkerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignWorkerResult{}, err
	}

	return AssignWorkerResult{
		PickupCode:   pickupCode,
		DeliveryCode: deliveryCode,
	}, nil
}
