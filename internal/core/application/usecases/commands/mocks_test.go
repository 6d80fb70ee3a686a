package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/assignment"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockEscrowRepository struct{ mock.Mock }

func (m *MockEscrowRepository) Add(ctx context.Context, e *escrow.Escrow) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEscrowRepository) Update(ctx context.Context, e *escrow.Escrow) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEscrowRepository) Get(ctx context.Context, id kernel.UUID) (*escrow.Escrow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

func (m *MockEscrowRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Escrow, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*account.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockOrderFlowUoW struct{ mock.Mock }

func (m *MockOrderFlowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderFlowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderFlowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderFlowUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderFlowUoW) EscrowRepository() ports.EscrowRepository {
	args := m.Called()
	return args.Get(0).(ports.EscrowRepository)
}

func (m *MockOrderFlowUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockOrderFlowUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockOrderFlowUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

func (m *MockOrderFlowUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderFlowUoWFactory struct{ mock.Mock }

func (m *MockOrderFlowUoWFactory) Create() commands.OrderFlowUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderFlowUoW)
}

type MockProductUoW struct{ MockOrderFlowUoW }

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockProfileUoW struct{ MockOrderFlowUoW }

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

// Test fixture helpers shared by the handler tests.

func mustMoney(t *testing.T, cents int64, currency string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents, currency)
	require.NoError(t, err)
	return m
}

func newTestProfile(t *testing.T, id kernel.UUID, roles ...account.Role) *account.Profile {
	t.Helper()
	p, err := account.NewProfile(id, "Test User", "user@example.com", roles)
	require.NoError(t, err)
	return p
}

func newTestProduct(t *testing.T, id kernel.UUID, sellerID kernel.UUID, priceCents int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, sellerID, "Mechanical Keyboard", "87 keys", mustMoney(t, priceCents, "USD"), stock)
	require.NoError(t, err)
	return p
}

// newAssignedOrder builds an order in WorkerAssigned with known codes,
// plus its escrow and assignment.
func newAssignedOrder(
	t *testing.T,
	orderID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	workerID kernel.UUID,
) (*order.Order, *escrow.Escrow, *assignment.Assignment) {
	t.Helper()

	o, e := newFrozenOrder(t, orderID, buyerID, sellerID)
	require.NoError(t, o.Accept())
	require.NoError(t, o.AssignWorker("ABC123", "XYZ789"))

	a, err := assignment.NewAssignment(kernel.NewUUID(), o.ID(), workerID)
	require.NoError(t, err)

	return o, e, a
}

// newFrozenOrder builds an order in PaymentFrozen with an attached escrow.
func newFrozenOrder(
	t *testing.T,
	orderID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
) (*order.Order, *escrow.Escrow) {
	t.Helper()

	o, err := order.NewOrder(orderID, buyerID, sellerID, kernel.NewUUID(), mustMoney(t, 99999, "USD"), 2)
	require.NoError(t, err)

	e, err := escrow.NewEscrow(kernel.NewUUID(), o.ID(), o.Total())
	require.NoError(t, err)
	require.NoError(t, o.MarkPaymentFrozen(e.ID()))

	return o, e
}
