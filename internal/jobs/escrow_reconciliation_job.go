package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// escrowReconciliationSchedule runs the sweep once a minute.
const escrowReconciliationSchedule = "0 * * * * *"

// EscrowReconciliationJob periodically checks orders and escrows for states
// that should be impossible: amount mismatches, terminal orders with funds
// still frozen, and orphaned escrows. It reports violations without
// attempting to repair them.
type EscrowReconciliationJob struct {
	handler queries.GetEscrowInconsistenciesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEscrowReconciliationJob creates the reconciliation sweep job.
func NewEscrowReconciliationJob(
	handler queries.GetEscrowInconsistenciesQueryHandler,
	logger *slog.Logger,
) *EscrowReconciliationJob {
	return &EscrowReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "escrow_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its schedule.
func (j *EscrowReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(escrowReconciliationSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetEscrowInconsistenciesQuery()

		inconsistencies, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Escrow reconciliation sweep failed", "error", handleErr)
			return
		}

		if len(inconsistencies) == 0 {
			j.logger.DebugContext(ctx, "Escrow reconciliation sweep found no violations")
			return
		}

		for _, violation := range inconsistencies {
			j.logger.ErrorContext(ctx, "Escrow inconsistency detected",
				"kind", violation.Kind,
				"escrowId", violation.EscrowID,
				"orderId", violation.OrderID,
				"escrowAmountCents", violation.AmountCents,
				"orderTotalCents", violation.TotalCents,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escrow reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *EscrowReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Escrow reconciliation job stopped")
}
