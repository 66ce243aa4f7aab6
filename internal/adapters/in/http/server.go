package http

import (
	"encoding/json"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// Server handles the /orders HTTP surface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	addPaymentHandler        commands.AddPaymentCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderPaymentsHandler queries.GetOrderPaymentsQueryHandler

	metrics *metrics.ServerMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addPaymentHandler commands.AddPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderPaymentsHandler queries.GetOrderPaymentsQueryHandler,
	serverMetrics *metrics.ServerMetrics,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		addPaymentHandler:        addPaymentHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderPaymentsHandler:  getOrderPaymentsHandler,
		metrics:                  serverMetrics,
	}
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		price, err := parseAmount("item.price", item.Price)
		if err != nil {
			return err
		}
		lines = append(lines, commands.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(lines)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.OrdersCreated.Inc()

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// ListOrders handles GET /orders?status=.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	filter := ""
	if status != nil {
		filter = *status
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, ok, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrderStatus handles PATCH /orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// CancelOrder handles PATCH /orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(cancelled)))
}

// AddPayment handles POST /orders/{id}/payments.
func (s *Server) AddPayment(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var body NewPayment
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	amount, err := parseAmount("amount", body.Amount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddPaymentCommand(id, amount, body.PaymentMethod)
	if err != nil {
		return err
	}

	payment, err := s.addPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.PaymentsRecorded.Inc()

	return ctx.JSON(http.StatusCreated, toPayment(queries.NewPaymentResponse(payment)))
}

// GetOrderPayments handles GET /orders/{id}/payments.
func (s *Server) GetOrderPayments(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderPaymentsQuery(id)
	if err != nil {
		return err
	}

	payments, err := s.getOrderPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Payment, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPayment(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func parseAmount(paramName string, raw json.Number) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return amount, nil
}
