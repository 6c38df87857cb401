// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the storefront.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every five seconds to deliver queued order
// notification emails from the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the outbox and mail transport
//	jobManager := jobs.NewJobManager(outbox, sender, logger)
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
// The dispatch job uses the cron expression "*/5 * * * * *", running every
// five seconds. Order placement only queues messages; this job is the single
// place where email actually leaves the system.
//
// # Error Handling
//
// - A failed batch fetch is logged and retried on the next tick
// - A failed send skips that message; it stays queued and is retried later
// - Failed job starts will stop any already running jobs
package jobs
