// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. EscrowReconciliationJob - Periodically sweeps orders and escrows for
// states that violate the money conservation rules: escrow amounts that
// differ from their order total, completed orders whose escrow was never
// released, cancelled orders whose escrow is still frozen, and escrows
// pointing at no order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(inconsistenciesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job never mutates state. Every violation it finds is
// logged at error level with the identifiers needed to investigate; an empty
// sweep is logged at debug level.
package jobs
