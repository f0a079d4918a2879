package jobs

import (
	"context"
	"log/slog"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityReconciliationJob repairs delivery partners left marked busy
// without a live order. Runs every minute as a safety net behind the
// transactional release on delivery completion.
type AvailabilityReconciliationJob struct {
	handler commands.ReconcileAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityReconciliationJob creates the reconciliation job.
func NewAvailabilityReconciliationJob(
	handler commands.ReconcileAvailabilityCommandHandler,
	logger *slog.Logger,
) *AvailabilityReconciliationJob {
	return &AvailabilityReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "availability_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *AvailabilityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		released, err := j.handler.Handle(ctx, commands.NewReconcileAvailabilityCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability reconciliation job failed", "error", err)
			return
		}

		if len(released) > 0 {
			j.logger.InfoContext(ctx, "Released stale delivery partners", "count", len(released))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *AvailabilityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job stopped")
}
