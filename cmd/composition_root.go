package cmd

import (
	"log/slog"

	orderhttp "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/locker"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/metrics"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	ledger  ports.Ledger
	locker  ports.OrderLocker
	clock   kernel.Clock
	ids     kernel.IDGenerator
	metrics *metrics.ServerMetrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:  config,
		logger:  logger,
		ledger:  memory.NewLedger(),
		locker:  locker.NewOrderLocker(),
		clock:   kernel.NewSystemClock(),
		ids:     kernel.NewUUIDGenerator(),
		metrics: metrics.NewServerMetrics("order_service"),
	}
}

func (c *CompositionRoot) Metrics() *metrics.ServerMetrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.ledger, c.clock, c.ids)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.ledger, c.locker, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.ledger, c.locker, c.clock)
}

func (c *CompositionRoot) CreateAddPaymentCommandHandler() commands.AddPaymentCommandHandler {
	return commands.NewAddPaymentCommandHandler(c.ledger, c.locker, c.clock, c.ids)
}

func (c *CompositionRoot) CreateSweepPaidOrdersCommandHandler() commands.SweepPaidOrdersCommandHandler {
	return commands.NewSweepPaidOrdersCommandHandler(c.ledger, c.locker, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetOrderPaymentsQueryHandler() queries.GetOrderPaymentsQueryHandler {
	return queries.NewGetOrderPaymentsQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateServer() *orderhttp.Server {
	return orderhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAddPaymentCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderPaymentsQueryHandler(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := c.CreateSweepPaidOrdersCommandHandler()
	return jobs.NewJobManager(&sweepHandler, c.config.JobInterval, c.metrics, c.logger)
}
