package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the fulfillment use cases over HTTP. It binds requests,
// builds commands and queries, and translates domain errors into status
// codes. All business rules stay in the application layer.
type Server struct {
	// Command handlers
	addProductToCartHandler        commands.AddProductToCartCommandHandler
	removeProductFromCartHandler   commands.RemoveProductFromCartCommandHandler
	createOrderHandler             commands.CreateOrderCommandHandler
	placeContainerHandler          commands.PlaceContainerCommandHandler
	changeContainerQuantityHandler commands.ChangeContainerQuantityCommandHandler
	deleteContainerHandler         commands.DeleteContainerCommandHandler
	bulkPlaceContainerHandler      commands.BulkPlaceContainerCommandHandler
	markItemPackedHandler          commands.MarkItemPackedCommandHandler
	markOrderPackedHandler         commands.MarkOrderPackedCommandHandler
	shipOrderHandler               commands.ShipOrderCommandHandler

	// Query handlers
	getPackerOrdersHandler   queries.GetPackerOrdersQueryHandler
	getSorterOrdersHandler   queries.GetSorterOrdersQueryHandler
	getShopUserOrdersHandler queries.GetShopUserOrdersQueryHandler

	cutoff queries.BidCutoff
	logger *slog.Logger
}

// NewServer creates an HTTP server wired to the given handlers. The bid
// cutoff is used by the worklist endpoints to bound today's cycle.
func NewServer(
	addProductToCartHandler commands.AddProductToCartCommandHandler,
	removeProductFromCartHandler commands.RemoveProductFromCartCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	placeContainerHandler commands.PlaceContainerCommandHandler,
	changeContainerQuantityHandler commands.ChangeContainerQuantityCommandHandler,
	deleteContainerHandler commands.DeleteContainerCommandHandler,
	bulkPlaceContainerHandler commands.BulkPlaceContainerCommandHandler,
	markItemPackedHandler commands.MarkItemPackedCommandHandler,
	markOrderPackedHandler commands.MarkOrderPackedCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getPackerOrdersHandler queries.GetPackerOrdersQueryHandler,
	getSorterOrdersHandler queries.GetSorterOrdersQueryHandler,
	getShopUserOrdersHandler queries.GetShopUserOrdersQueryHandler,
	cutoff queries.BidCutoff,
	logger *slog.Logger,
) *Server {
	return &Server{
		addProductToCartHandler:        addProductToCartHandler,
		removeProductFromCartHandler:   removeProductFromCartHandler,
		createOrderHandler:             createOrderHandler,
		placeContainerHandler:          placeContainerHandler,
		changeContainerQuantityHandler: changeContainerQuantityHandler,
		deleteContainerHandler:         deleteContainerHandler,
		bulkPlaceContainerHandler:      bulkPlaceContainerHandler,
		markItemPackedHandler:          markItemPackedHandler,
		markOrderPackedHandler:         markOrderPackedHandler,
		shipOrderHandler:               shipOrderHandler,
		getPackerOrdersHandler:         getPackerOrdersHandler,
		getSorterOrdersHandler:         getSorterOrdersHandler,
		getShopUserOrdersHandler:       getShopUserOrdersHandler,
		cutoff:                         cutoff,
		logger:                         logger,
	}
}

// RegisterRoutes mounts the service API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cart/items", s.AddCartItem)
	api.DELETE("/users/:userId/cart/:productId", s.RemoveCartItem)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/containers", s.BulkPlaceContainer)
	api.POST("/orders/:orderId/packed", s.MarkOrderPacked)
	api.POST("/orders/:orderId/ship", s.ShipOrder)

	api.POST("/order-items/:itemId/containers", s.PlaceContainer)
	api.POST("/order-items/:itemId/packed", s.MarkItemPacked)

	api.PUT("/containers/:containerId", s.ChangeContainer)
	api.DELETE("/containers/:containerId", s.DeleteContainer)

	api.GET("/packer/orders", s.GetPackerOrders)
	api.GET("/sorter/orders", s.GetSorterOrders)
	api.GET("/users/:userId/orders", s.GetShopUserOrders)
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}
	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewAddProductToCartCommand(userID, productID, quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	if err = s.addProductToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "add cart item", err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveCartItem handles DELETE /api/v1/users/:userId/cart/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewRemoveProductFromCartCommand(userID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.removeProductFromCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "remove cart item", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "create order", err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PlaceContainer handles POST /api/v1/order-items/:itemId/containers.
func (s *Server) PlaceContainer(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid order item id: "+err.Error())
	}

	var req PlaceContainerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewPlaceContainerCommand(itemID, req.Number, quantity)
	if err != nil {
		return badRequest(ctx, "Invalid placement: "+err.Error())
	}

	if err = s.placeContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "place container", err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeContainer handles PUT /api/v1/containers/:containerId.
func (s *Server) ChangeContainer(ctx echo.Context) error {
	containerID, err := kernel.UUIDFromString(ctx.Param("containerId"))
	if err != nil {
		return badRequest(ctx, "Invalid container id: "+err.Error())
	}

	var req ChangeContainerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewChangeContainerQuantityCommand(containerID, quantity)
	if err != nil {
		return badRequest(ctx, "Invalid change: "+err.Error())
	}

	if err = s.changeContainerQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "change container quantity", err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteContainer handles DELETE /api/v1/containers/:containerId.
func (s *Server) DeleteContainer(ctx echo.Context) error {
	containerID, err := kernel.UUIDFromString(ctx.Param("containerId"))
	if err != nil {
		return badRequest(ctx, "Invalid container id: "+err.Error())
	}

	cmd, err := commands.NewDeleteContainerCommand(containerID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.deleteContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "delete container", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkPlaceContainer handles POST /api/v1/orders/:orderId/containers.
func (s *Server) BulkPlaceContainer(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req BulkPlaceContainerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBulkPlaceContainerCommand(orderID, req.Number)
	if err != nil {
		return badRequest(ctx, "Invalid placement: "+err.Error())
	}

	result, err := s.bulkPlaceContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeDomainError(ctx, "bulk place container", err)
	}

	return ctx.JSON(http.StatusOK, BulkPlaceContainerResponse{
		AlreadyAssembled: result.AlreadyAssembled,
		Skipped:          result.Skipped,
	})
}

// MarkItemPacked handles POST /api/v1/order-items/:itemId/packed.
func (s *Server) MarkItemPacked(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid order item id: "+err.Error())
	}

	cmd, err := commands.NewMarkItemPackedCommand(itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.markItemPackedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "mark item packed", err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkOrderPacked handles POST /api/v1/orders/:orderId/packed.
func (s *Server) MarkOrderPacked(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewMarkOrderPackedCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.markOrderPackedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "mark order packed", err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, "ship order", err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPackerOrders handles GET /api/v1/packer/orders.
func (s *Server) GetPackerOrders(ctx echo.Context) error {
	query, err := queries.NewGetPackerOrdersQuery(s.cutoff.Today(time.Now()))
	if err != nil {
		return badRequest(ctx, "Invalid cutoff: "+err.Error())
	}

	rows, err := s.getPackerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, "get packer orders", err)
	}

	response := make([]PackerOrder, len(rows))
	for i, row := range rows {
		response[i] = PackerOrder{
			ID:            row.OrderID.String(),
			ShopName:      row.ShopName,
			CreatedAt:     row.CreatedAt,
			UnpackedItems: row.UnpackedItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSorterOrders handles GET /api/v1/sorter/orders.
func (s *Server) GetSorterOrders(ctx echo.Context) error {
	query, err := queries.NewGetSorterOrdersQuery(s.cutoff.Today(time.Now()))
	if err != nil {
		return badRequest(ctx, "Invalid cutoff: "+err.Error())
	}

	rows, err := s.getSorterOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, "get sorter orders", err)
	}

	response := make([]SorterOrder, len(rows))
	for i, row := range rows {
		response[i] = SorterOrder{
			ID:        row.OrderID.String(),
			ShopName:  row.ShopName,
			Status:    row.Status.String(),
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShopUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) GetShopUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetShopUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	rows, err := s.getShopUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, "get shop user orders", err)
	}

	response := make([]ShopUserOrder, len(rows))
	for i, row := range rows {
		response[i] = ShopUserOrder{
			ID:        row.OrderID.String(),
			Status:    row.Status.String(),
			CreatedAt: row.CreatedAt,
			ShippedAt: row.ShippedAt,
			TotalCost: row.TotalCost.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeDomainError translates application errors into HTTP status codes.
// Missing aggregates map to 404, state rule violations to 409, invalid
// values to 400. Anything else is logged and reported as 500.
func (s *Server) writeDomainError(ctx echo.Context, operation string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, order.ErrOrderItemNotFound),
		errors.Is(err, order.ErrContainerNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		return writeError(ctx, http.StatusNotFound, err)
	case errors.Is(err, order.ErrContainerOverflow),
		errors.Is(err, order.ErrItemNotPacked),
		errors.Is(err, order.ErrOrderNotAssembled),
		errors.Is(err, order.ErrOrderAlreadyShipped),
		errors.Is(err, order.ErrCartIsEmpty):
		return writeError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err)
	}

	s.logger.Error("request failed", "operation", operation, "error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func writeError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
