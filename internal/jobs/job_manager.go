package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paidOrdersSweepJob *PaidOrdersSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweeper PaidOrdersSweeper,
	sweepInterval time.Duration,
	serverMetrics *metrics.ServerMetrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paidOrdersSweepJob: NewPaidOrdersSweepJob(sweeper, sweepInterval, serverMetrics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paidOrdersSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start paid orders sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to complete.
func (jm *JobManager) StopAll() {
	jm.paidOrdersSweepJob.Stop()
}
