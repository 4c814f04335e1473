// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for job matching.
//
// # Available Jobs
//
// 1. MatchingJob - Runs the dispatcher cycle on a configurable interval:
// promotes requested jobs into matching, expires stale offers and extends
// new offers to the best eligible technicians.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(promoteHandler, matchHandler, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The matching job uses an "@every" cron schedule derived from the configured
// poll interval (10s by default). StopAll waits for a running cycle to
// complete, so shutdown never interrupts a cycle mid-transaction.
//
// # Error Handling
//
// A failed cycle is logged and swallowed; the store is the single source of
// truth, so the next cycle picks up exactly where the failed one left off.
package jobs
