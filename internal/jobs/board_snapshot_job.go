package jobs

import (
	"context"
	"log/slog"
	"strings"

	"loadboard/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBoardSnapshotSchedule runs the snapshot at the top of every minute.
const DefaultBoardSnapshotSchedule = "0 * * * * *"

// BoardSnapshotJob periodically logs how many loads sit in each status.
// It only reads; the counts are a point-in-time snapshot.
type BoardSnapshotJob struct {
	handler  queries.GetBoardSnapshotQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardSnapshotJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty one falls back to DefaultBoardSnapshotSchedule.
func NewBoardSnapshotJob(
	handler queries.GetBoardSnapshotQueryHandler,
	schedule string,
	logger *slog.Logger,
) *BoardSnapshotJob {
	if strings.TrimSpace(schedule) == "" {
		schedule = DefaultBoardSnapshotSchedule
	}
	return &BoardSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_snapshot_job"),
	}
}

// Start registers the snapshot with the scheduler and starts it.
func (j *BoardSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot and logs it.
func (j *BoardSnapshotJob) Run(ctx context.Context) {
	snapshot, err := j.handler.Handle(ctx, queries.NewGetBoardSnapshotQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Board snapshot failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(snapshot.Counts)+2)
	attrs = append(attrs, "total", snapshot.Total)
	for _, c := range snapshot.Counts {
		attrs = append(attrs, strings.ToLower(c.Status.String()), c.Count)
	}
	j.logger.InfoContext(ctx, "Board snapshot", attrs...)
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *BoardSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board snapshot job stopped")
}
