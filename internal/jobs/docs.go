// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run independently of request traffic.
//
// # Available Jobs
//
// 1. PaidOrdersSweepJob - promotes fully paid PENDING orders to PROCESSING on a fixed interval
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.JobInterval, serverMetrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Blocks until the in-flight sweep, if any, has finished
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep runs every configured interval (default five minutes), measured from
// the previous activation. Intervals below one second are honoured exactly, unlike
// cron.Every which rounds down to whole seconds.
//
// # Error Handling
//
// A failed or panicking tick is logged and counted; the schedule keeps running.
// A tick that is still running when the next one is due causes that next one to be skipped.
package jobs
