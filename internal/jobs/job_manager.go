package jobs

import (
	"fmt"
	"log/slog"

	"kirana/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersReminderJob *PendingOrdersReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersReminderJob: NewPendingOrdersReminderJob(listOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersReminderJob.Stop()
}
