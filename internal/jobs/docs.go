// Package jobs provides scheduled background tasks for the load board.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with a
// leading seconds field) and only ever read from the store. No job changes a
// load: every transition is issued by an actor through the command handlers.
//
// # Available Jobs
//
// 1. BoardSnapshotJob - logs the number of loads per status, every minute by default
//
// # Usage
//
//	jobManager := jobs.NewJobManager(snapshotHandler, cfg.BoardSnapshotSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed snapshot is logged and the next tick tries again. An invalid schedule
// fails StartAll.
package jobs
