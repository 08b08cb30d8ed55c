package jobs

import (
	"fmt"
	"log/slog"

	"loadboard/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardSnapshotJob *BoardSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	boardSnapshotHandler queries.GetBoardSnapshotQueryHandler,
	boardSnapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardSnapshotJob: NewBoardSnapshotJob(boardSnapshotHandler, boardSnapshotSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start board snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boardSnapshotJob.Stop()
}
