// Package http exposes the order service over a REST API using echo.
package http

import (
	"errors"
	"net/http"
	"time"

	"shoporders/internal/core/application/usecases/commands"
	"shoporders/internal/core/application/usecases/queries"
	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"
	"shoporders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// shippingDateLayout is the wire format for requested shipping dates.
const shippingDateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrdersHandler      commands.DeleteOrdersCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler
	ordersByStatusHandler  queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrdersHandler commands.DeleteOrdersCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrdersHandler:      deleteOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByUserHandler:   getOrdersByUserHandler,
		ordersByStatusHandler:    ordersByStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.DELETE("/orders", s.DeleteOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/users/:id/orders", s.GetUserOrders)
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemRequest is one cart entry in an order creation request.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// ShippingDate is optional; when absent the service schedules shipping three
// days after placement.
type CreateOrderRequest struct {
	UserID       string            `json:"userId"`
	ShippingDate string            `json:"shippingDate,omitempty"`
	TotalAmount  float64           `json:"totalAmount"`
	Email        string            `json:"email"`
	Items        []CartItemRequest `json:"items"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// DeleteOrdersRequest is the body of DELETE /api/v1/orders.
type DeleteOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// LineResponse is one order line in an order response body.
type LineResponse struct {
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalAmount float64 `json:"totalAmount"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	OrderDate    time.Time      `json:"orderDate"`
	ShippingDate time.Time      `json:"shippingDate"`
	Status       string         `json:"status"`
	TotalAmount  float64        `json:"totalAmount"`
	Email        string         `json:"email"`
	Lines        []LineResponse `json:"lines"`
}

// CreateOrder handles POST /api/v1/orders - places a new order from a cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	var shippingDate *time.Time
	if req.ShippingDate != "" {
		parsed, parseErr := time.Parse(shippingDateLayout, req.ShippingDate)
		if parseErr != nil {
			return badRequest(ctx, "Invalid shipping date, expected YYYY-MM-DD")
		}
		shippingDate = &parsed
	}

	items := make([]commands.CartItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, idErr := kernel.UUIDFromString(itemReq.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}

		item, itemErr := commands.NewCartItem(productID, itemReq.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid cart item: "+itemErr.Error())
		}

		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, shippingDate, req.TotalAmount, req.Email, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromDomain(placed))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponse(result))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomain(updated))
}

// DeleteOrders handles DELETE /api/v1/orders - removes a batch of orders.
// Unknown ids are skipped silently.
func (s *Server) DeleteOrders(ctx echo.Context) error {
	var req DeleteOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewDeleteOrdersCommand(orderIDs)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err = s.deleteOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/:id/orders - a user's order history.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	results, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponses(results))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=S - status-filtered listing.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.QueryParam("status"))
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	results, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponses(results))
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes:
// missing objects become 404, validation failures 400, everything else 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// fromDomain maps an order aggregate to its JSON representation.
func fromDomain(o *order.Order) OrderResponse {
	lines := make([]LineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, LineResponse{
			ProductID:   line.ProductID().String(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Amount(),
			TotalAmount: line.TotalAmount(),
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		UserID:       o.UserID().String(),
		OrderDate:    o.OrderDate(),
		ShippingDate: o.ShippingDate(),
		Status:       o.Status().String(),
		TotalAmount:  o.TotalAmount(),
		Email:        o.Email(),
		Lines:        lines,
	}
}

// fromQueryResponse maps a read-side projection to its JSON representation.
func fromQueryResponse(r queries.OrderResponse) OrderResponse {
	lines := make([]LineResponse, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, LineResponse{
			ProductID:   line.ProductID.String(),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalAmount: line.TotalAmount,
		})
	}

	return OrderResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		OrderDate:    r.OrderDate,
		ShippingDate: r.ShippingDate,
		Status:       r.Status,
		TotalAmount:  r.TotalAmount,
		Email:        r.Email,
		Lines:        lines,
	}
}

func fromQueryResponses(results []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, fromQueryResponse(r))
	}
	return responses
}
