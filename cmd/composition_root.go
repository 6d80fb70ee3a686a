package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. All handlers share one GORM
// connection; each command execution gets its own unit of work.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderFlowUoWFactory() commands.OrderFlowUoWFactory {
	return FuncOrderFlowUoWFactory(func() commands.OrderFlowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterProfileCommandHandler() commands.RegisterProfileCommandHandler {
	return commands.NewRegisterProfileCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateVerifyPickupCommandHandler() commands.VerifyPickupCommandHandler {
	return commands.NewVerifyPickupCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateVerifyDeliveryCommandHandler() commands.VerifyDeliveryCommandHandler {
	return commands.NewVerifyDeliveryCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateReleaseEscrowCommandHandler() commands.ReleaseEscrowCommandHandler {
	return commands.NewReleaseEscrowCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateRefundEscrowCommandHandler() commands.RefundEscrowCommandHandler {
	return commands.NewRefundEscrowCommandHandler(c.orderFlowUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByActorQueryHandler() queries.GetOrdersByActorQueryHandler {
	return queries.NewGetOrdersByActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEscrowInconsistenciesQueryHandler() queries.GetEscrowInconsistenciesQueryHandler {
	return queries.NewGetEscrowInconsistenciesQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterProfileCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateAssignWorkerCommandHandler(),
		c.CreateVerifyPickupCommandHandler(),
		c.CreateVerifyDeliveryCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateReleaseEscrowCommandHandler(),
		c.CreateRefundEscrowCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByActorQueryHandler(),
		c.CreateGetAuditTrailQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetEscrowInconsistenciesQueryHandler(), logger)
}

type FuncOrderFlowUoWFactory func() commands.OrderFlowUoW

func (f FuncOrderFlowUoWFactory) Create() commands.OrderFlowUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
