// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the warehouse workflow.
//
// # Available Jobs
//
// 1. BacklogReportJob - Runs once a day at the bid cutoff and logs how many
// orders are waiting for packers and sorters in the closed cycle.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(packerOrdersHandler, sorterOrdersHandler, cutoff, logger)
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
// The backlog report fires at the configured bid cutoff (14:00:00 by
// default), the moment today's order intake closes and the warehouse starts
// working the cycle.
//
// # Error Handling
//
// Report queries are read-only, so every failure is logged; there are no
// expected business errors to filter out.
package jobs
