// Package http exposes the order intake and back-office operations over REST.
package http

import (
	"errors"
	"net/http"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler  commands.SubmitOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	shipOrderHandler    commands.ShipOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getBillHandler    queries.GetBillQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getBillHandler queries.GetBillQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:  submitOrderHandler,
		confirmOrderHandler: confirmOrderHandler,
		shipOrderHandler:    shipOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		getBillHandler:      getBillHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. The adminGate
// middleware protects the back-office routes.
func (s *Server) RegisterRoutes(e *echo.Echo, adminGate echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders/:id", s.GetOrder)

	admin := api.Group("", adminGate)
	admin.GET("/orders", s.ListOrders)
	admin.POST("/orders/:id/confirm", s.ConfirmOrder)
	admin.POST("/orders/:id/ship", s.ShipOrder)
	admin.POST("/orders/:id/cancel", s.CancelOrder)
	admin.GET("/orders/:id/bill", s.GetBill)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type submitOrderRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Order   string `json:"order"`
}

type submitOrderResponse struct {
	OrderID string `json:"order_id"`
}

type confirmItemRequest struct {
	Name      string          `json:"item"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type confirmOrderRequest struct {
	Items []confirmItemRequest `json:"items"`
}

type itemResponse struct {
	Item      string          `json:"item"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

type orderResponse struct {
	OrderID    string          `json:"order_id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email,omitempty"`
	Address    string          `json:"address"`
	Order      string          `json:"order"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	Timestamp  string          `json:"timestamp"`
	Items      []itemResponse  `json:"items,omitempty"`
}

// SubmitOrder handles POST /api/v1/orders - accepts a free-text order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request submitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitOrderCommand(
		request.Name, request.Phone, request.Email, request.Address, request.Order,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, submitOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - order status tracking.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	view, items, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view, items))
}

// ListOrders handles GET /api/v1/orders - all orders, most recent first.
func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view, nil))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - the operator fixes
// quantities and prices; the supplied items replace the stored line items.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	var request confirmOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ConfirmItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ConfirmItem{
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewConfirmOrderCommand(ctx.Param("id"), items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	cmd, err := commands.NewShipOrderCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetBill handles GET /api/v1/orders/:id/bill - the printable bill document.
func (s *Server) GetBill(ctx echo.Context) error {
	query, err := queries.NewGetBillQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	bill, err := s.getBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, "text/plain; charset=utf-8", bill)
}

func toOrderResponse(view ports.OrderView, items []ports.ItemView) orderResponse {
	response := orderResponse{
		OrderID:    view.OrderID,
		Name:       view.Name,
		Phone:      view.Phone,
		Email:      view.Email,
		Address:    view.Address,
		Order:      view.RawText,
		TotalPrice: view.TotalPrice,
		Status:     view.Status,
		Timestamp:  view.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}

	for _, item := range items {
		response.Items = append(response.Items, itemResponse{
			Item:      item.Name,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			ItemTotal: item.Total,
		})
	}

	return response
}

// writeError maps domain errors to HTTP statuses: validation problems are
// client errors, unknown identifiers are 404, disallowed status transitions
// are conflicts, exhausted identifier generation is 503.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionNotAllowed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrGenerationExhausted):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}
