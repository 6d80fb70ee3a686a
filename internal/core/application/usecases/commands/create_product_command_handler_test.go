package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	productID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(
		productID, sellerID, "Mechanical Keyboard", "87 keys", mustMoney(t, 99999, "USD"), 10)
	require.NoError(t, err)

	seller := newTestProfile(t, sellerID, account.RoleSeller)

	productRepo := new(MockProductRepository)
	profileRepo := new(MockProfileRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockProductUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, sellerID).Return(seller, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := productRepo.Calls[0].Arguments[1].(*product.Product)
	assert.True(t, created.IsActive())
	assert.True(t, created.IsSoldBy(sellerID))
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_NonSellerDenied(t *testing.T) {
	ctx := context.Background()

	sellerID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), sellerID, "Mechanical Keyboard", "", mustMoney(t, 500, "USD"), 1)
	require.NoError(t, err)

	buyerOnly := newTestProfile(t, sellerID, account.RoleBuyer)

	profileRepo := new(MockProfileRepository)
	uow := new(MockProductUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, sellerID).Return(buyerOnly, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewCreateProductCommand_Validation(t *testing.T) {
	t.Run("should reject empty title", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", "", mustMoney(t, 500, "USD"), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Mechanical Keyboard", "", mustMoney(t, 500, "USD"), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Mechanical Keyboard", "", kernel.Money{}, 1)

		require.Error(t, err)
	})
}
