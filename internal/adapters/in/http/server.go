// Package http exposes the marketplace over a REST API. Every mutating
// request identifies its actor through the X-Profile-ID header; the
// application layer decides whether that actor may perform the operation.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the profile ID of the caller.
const actorHeader = "X-Profile-ID"

// ErrorResponse is the JSON body returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse is returned when a new resource has been created.
type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerProfileHandler commands.RegisterProfileCommandHandler
	createProductHandler   commands.CreateProductCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	assignWorkerHandler    commands.AssignWorkerCommandHandler
	verifyPickupHandler    commands.VerifyPickupCommandHandler
	verifyDeliveryHandler  commands.VerifyDeliveryCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	releaseEscrowHandler   commands.ReleaseEscrowCommandHandler
	refundEscrowHandler    commands.RefundEscrowCommandHandler

	getOrderHandler         queries.GetOrderQueryHandler
	getOrdersByActorHandler queries.GetOrdersByActorQueryHandler
	getAuditTrailHandler    queries.GetAuditTrailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerProfileHandler commands.RegisterProfileCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	verifyPickupHandler commands.VerifyPickupCommandHandler,
	verifyDeliveryHandler commands.VerifyDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	releaseEscrowHandler commands.ReleaseEscrowCommandHandler,
	refundEscrowHandler commands.RefundEscrowCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByActorHandler queries.GetOrdersByActorQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
) *Server {
	return &Server{
		registerProfileHandler:  registerProfileHandler,
		createProductHandler:    createProductHandler,
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		assignWorkerHandler:     assignWorkerHandler,
		verifyPickupHandler:     verifyPickupHandler,
		verifyDeliveryHandler:   verifyDeliveryHandler,
		cancelOrderHandler:      cancelOrderHandler,
		releaseEscrowHandler:    releaseEscrowHandler,
		refundEscrowHandler:     refundEscrowHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersByActorHandler: getOrdersByActorHandler,
		getAuditTrailHandler:    getAuditTrailHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/profiles", s.RegisterProfile)
	api.POST("/products", s.CreateProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/assign", s.AssignWorker)
	api.POST("/orders/:id/pickup-verify", s.VerifyPickup)
	api.POST("/orders/:id/delivery-verify", s.VerifyDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/escrow/release", s.ReleaseEscrow)
	api.POST("/orders/:id/escrow/refund", s.RefundEscrow)

	api.GET("/audit", s.GetAuditTrail)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type registerProfileRequest struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// RegisterProfile handles POST /api/v1/profiles.
func (s *Server) RegisterProfile(ctx echo.Context) error {
	var req registerProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	roles := make([]account.Role, 0, len(req.Roles))
	for _, name := range req.Roles {
		role, err := account.RoleFromString(name)
		if err != nil {
			return mapError(ctx, err)
		}
		roles = append(roles, role)
	}

	profileID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProfileCommand(profileID, req.Name, req.Email, roles)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.registerProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: profileID})
}

type createProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.PriceCents, req.Currency)
	if err != nil {
		return mapError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, actorID, req.Title, req.Description, price, req.Stock,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID})
}

type createOrderRequest struct {
	SellerID  kernel.UUID `json:"sellerId"`
	ProductID kernel.UUID `json:"productId"`
	Quantity  int         `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders. The buyer is the acting profile;
// on success the order is created with its payment already frozen in escrow.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, req.SellerID, req.ProductID, req.Quantity)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actorID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

type assignWorkerRequest struct {
	WorkerID kernel.UUID `json:"workerId"`
}

type assignWorkerResponse struct {
	queries.GetOrderQueryResponse
	PickupCode   string `json:"pickupCode"`
	DeliveryCode string `json:"deliveryCode"`
}

// AssignWorker handles POST /api/v1/orders/:id/assign. The response carries
// the freshly generated verification codes so the seller can hand the pickup
// code to the worker and the delivery code to the buyer.
func (s *Server) AssignWorker(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req assignWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignWorkerCommand(orderID, actorID, req.WorkerID)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.assignWorkerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignWorkerResponse{
		GetOrderQueryResponse: view,
		PickupCode:            result.PickupCode,
		DeliveryCode:          result.DeliveryCode,
	})
}

type verifyCodeRequest struct {
	Code string `json:"code"`
}

// VerifyPickup handles POST /api/v1/orders/:id/pickup-verify.
func (s *Server) VerifyPickup(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req verifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewVerifyPickupCommand(orderID, actorID, req.Code)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.verifyPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// VerifyDelivery handles POST /api/v1/orders/:id/delivery-verify.
func (s *Server) VerifyDelivery(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req verifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewVerifyDeliveryCommand(orderID, actorID, req.Code)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.verifyDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, req.Reason)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// ReleaseEscrow handles POST /api/v1/orders/:id/escrow/release.
func (s *Server) ReleaseEscrow(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewReleaseEscrowCommand(orderID, actorID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.releaseEscrowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RefundEscrow handles POST /api/v1/orders/:id/escrow/refund.
func (s *Server) RefundEscrow(ctx echo.Context) error {
	orderID, actorID, err := orderAndActor(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRefundEscrowCommand(orderID, actorID, req.Reason)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.refundEscrowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetOrder handles GET /api/v1/orders/:id. The detail view carries no
// verification codes; callers get those from the assign response or, for
// workers, from their order listing.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders?role=buyer|seller|worker listing the
// orders the acting profile participates in.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrdersByActorQuery(actorID, ctx.QueryParam("role"))
	if err != nil {
		return mapError(ctx, err)
	}

	response, err := s.getOrdersByActorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/audit?entityType=order&entityId=...
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	entityID, err := kernel.UUIDFromString(ctx.QueryParam("entityId"))
	if err != nil {
		return badRequest(ctx, "invalid entity id")
	}

	query, err := queries.NewGetAuditTrailQuery(ctx.QueryParam("entityType"), entityID)
	if err != nil {
		return mapError(ctx, err)
	}

	response, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder re-reads the order after a successful command so the
// caller sees the resulting state.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderAndActor extracts the order ID from the path and the actor from the
// header.
func orderAndActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("orderId")
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, actorID, nil
}

// actorFromHeader resolves the acting profile ID from the X-Profile-ID
// header.
func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader + " header")
	}

	actorID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError(actorHeader + " header")
	}

	return actorID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors into HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrCodeMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
