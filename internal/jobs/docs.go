// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the service needs.
//
// # Available Jobs
//
// 1. NotificationCleanupJob - Purges read notifications older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job schedule is configurable; by default it runs once a day
// during the low-traffic window ("0 0 3 * * *", second-granularity cron
// expression).
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; they never stop
// the scheduler.
package jobs
