// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations behind the order and partner workflows.
//
// # Available Jobs
//
// 1. AvailabilityReconciliationJob - Runs every minute to release delivery
// partners still marked busy after their order was delivered or deleted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reconciliation errors are logged and retried on the next tick. An empty
// sweep is the normal case and produces no log output.
package jobs
