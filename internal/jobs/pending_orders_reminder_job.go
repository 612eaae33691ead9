package jobs

import (
	"context"
	"log/slog"
	"time"

	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// reminderAge is how long an order may sit in Pending before the reminder
// starts flagging it.
const reminderAge = 30 * time.Minute

// PendingOrdersReminderJob periodically scans for orders stuck in Pending so
// the operator does not forget to confirm them.
type PendingOrdersReminderJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewPendingOrdersReminderJob creates a job that reports stale pending orders.
func NewPendingOrdersReminderJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *PendingOrdersReminderJob {
	return &PendingOrdersReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_reminder_job"),
		now:     time.Now,
	}
}

// Start begins the reminder job to run every minute.
func (j *PendingOrdersReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrdersReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders reminder job stopped")
}

func (j *PendingOrdersReminderJob) run() {
	ctx := context.Background()

	views, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders reminder job failed", "error", err)
		return
	}

	cutoff := j.now().UTC().Add(-reminderAge)
	stale := 0
	for _, view := range views {
		if view.Status == order.Pending.String() && view.CreatedAt.Before(cutoff) {
			stale++
		}
	}

	if stale > 0 {
		j.logger.WarnContext(ctx, "orders awaiting confirmation",
			"stale_pending", stale,
			"older_than", reminderAge.String(),
		)
	}
}
