package http

import (
	"log/slog"
	"net/http"

	"orderflow/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter wires the order routes, request validation, metrics, request
// logging and the operational endpoints onto a fresh echo instance.
func NewRouter(
	server *Server,
	doc *openapi3.T,
	serverMetrics *metrics.ServerMetrics,
	logger *slog.Logger,
) (*echo.Echo, error) {
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(serverMetrics.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(serverMetrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	orders := e.Group("/orders", validator)
	orders.POST("", server.CreateOrder)
	orders.GET("", server.ListOrders)
	orders.GET("/:id", server.GetOrder)
	orders.PATCH("/:id/status", server.UpdateOrderStatus)
	orders.PATCH("/:id/cancel", server.CancelOrder)
	orders.POST("/:id/payments", server.AddPayment)
	orders.GET("/:id/payments", server.GetOrderPayments)

	return e, nil
}
