package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestReleaseEscrowCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	cmd, err := commands.NewReleaseEscrowCommand(orderID, adminID)
	require.NoError(t, err)

	admin := newTestProfile(t, adminID, account.RoleAdmin)
	testOrder, testEscrow := newFrozenOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	escrowRepo := new(MockEscrowRepository)
	profileRepo := new(MockProfileRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderFlowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("EscrowRepository").Return(escrowRepo).Once(),
		escrowRepo.On("GetByOrderID", ctx, orderID).Return(testEscrow, nil).Once(),
		uow.On("EscrowRepository").Return(escrowRepo).Once(),
		escrowRepo.On("Update", ctx, mock.AnythingOfType("*escrow.Escrow")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseEscrowCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, escrow.Released, testEscrow.Status())
	// The override pays the seller without completing the delivery flow.
	assert.Equal(t, order.PaymentFrozen, testOrder.Status())
	uow.AssertExpectations(t)
}

func TestReleaseEscrowCommandHandler_Handle_NonAdminDenied(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	cmd, err := commands.NewReleaseEscrowCommand(orderID, sellerID)
	require.NoError(t, err)

	seller := newTestProfile(t, sellerID, account.RoleSeller)
	testOrder, _ := newFrozenOrder(t, orderID, kernel.NewUUID(), sellerID)

	orderRepo := new(MockOrderRepository)
	profileRepo := new(MockProfileRepository)
	uow := new(MockOrderFlowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, sellerID).Return(seller, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseEscrowCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// The seller cannot pay themselves out, even for their own order.
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestReleaseEscrowCommandHandler_Handle_AlreadyRefunded(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	cmd, err := commands.NewReleaseEscrowCommand(orderID, adminID)
	require.NoError(t, err)

	admin := newTestProfile(t, adminID, account.RoleAdmin)
	testOrder, testEscrow := newFrozenOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, testEscrow.Refund())

	orderRepo := new(MockOrderRepository)
	escrowRepo := new(MockEscrowRepository)
	profileRepo := new(MockProfileRepository)
	uow := new(MockOrderFlowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("EscrowRepository").Return(escrowRepo).Once(),
		escrowRepo.On("GetByOrderID", ctx, orderID).Return(testEscrow, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseEscrowCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Release and refund are mutually exclusive terminal outcomes.
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, escrow.Refunded, testEscrow.Status())
}
