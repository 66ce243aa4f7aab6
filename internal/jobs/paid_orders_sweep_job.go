package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// PaidOrdersSweeper is the part of the application layer the job drives.
type PaidOrdersSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepPaidOrdersCommand) ([]*order.Order, error)
}

// PaidOrdersSweepJob periodically promotes fully paid orders to PROCESSING.
type PaidOrdersSweepJob struct {
	sweeper  PaidOrdersSweeper
	interval time.Duration
	metrics  *metrics.ServerMetrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaidOrdersSweepJob creates a sweep job that fires every interval once started.
func NewPaidOrdersSweepJob(
	sweeper PaidOrdersSweeper,
	interval time.Duration,
	serverMetrics *metrics.ServerMetrics,
	logger *slog.Logger,
) *PaidOrdersSweepJob {
	logger = logger.With("component", "paid_orders_sweep_job")
	cronLog := cronLogger{logger: logger}

	return &PaidOrdersSweepJob{
		sweeper:  sweeper,
		interval: interval,
		metrics:  serverMetrics,
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

// Start schedules the sweep. The first tick happens one interval after Start.
func (j *PaidOrdersSweepJob) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", j.interval)
	}

	j.cron.Schedule(fixedInterval(j.interval), j)
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Paid orders sweep job started", "interval", j.interval.String())
	return nil
}

// Stop cancels future ticks and waits for a running tick to finish.
func (j *PaidOrdersSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Paid orders sweep job stopped")
}

// Run performs a single sweep. It implements cron.Job.
func (j *PaidOrdersSweepJob) Run() {
	ctx := context.Background()

	promoted, err := j.sweeper.Handle(ctx, commands.NewSweepPaidOrdersCommand())
	j.metrics.OrdersPromoted.Add(float64(len(promoted)))
	if err != nil {
		j.metrics.SweepFailures.Inc()
		j.logger.ErrorContext(ctx, "Paid orders sweep failed", "error", err, "promoted", len(promoted))
		return
	}

	if len(promoted) == 0 {
		j.logger.DebugContext(ctx, "Paid orders sweep found nothing to promote")
		return
	}

	ids := make([]string, 0, len(promoted))
	for _, o := range promoted {
		ids = append(ids, o.ID())
	}
	j.logger.InfoContext(ctx, "Paid orders promoted to processing", "count", len(ids), "order_ids", ids)
}
