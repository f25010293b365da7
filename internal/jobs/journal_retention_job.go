package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRetentionSchedule prunes the journal every night at 03:00.
const DefaultRetentionSchedule = "0 3 * * *"

// JournalPruner deletes old journal entries.
type JournalPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// JournalRetentionJob keeps the action journal bounded.
type JournalRetentionJob struct {
	journal   JournalPruner
	retention time.Duration
	schedule  string
	timeout   time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewJournalRetentionJob creates the job. An empty schedule selects DefaultRetentionSchedule.
func NewJournalRetentionJob(journal JournalPruner, retention time.Duration, schedule string, logger *zap.Logger) *JournalRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	return &JournalRetentionJob{
		journal:   journal,
		retention: retention,
		schedule:  schedule,
		timeout:   time.Minute,
		now:       time.Now,
		cron:      cron.New(),
		logger:    logger.With(zap.String("component", "journal_retention_job")),
	}
}

// RunOnce prunes entries older than the retention period.
func (j *JournalRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cutoff := j.now().Add(-j.retention)
	removed, err := j.journal.PruneBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("journal retention job failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}

	j.logger.Info("journal pruned", zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	return removed, nil
}

// Start registers the prune on the schedule and starts the scheduler.
func (j *JournalRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("journal retention job started", zap.String("schedule", j.schedule), zap.Duration("retention", j.retention))
	return nil
}

// Stop stops the scheduler. A running prune is allowed to finish.
func (j *JournalRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("journal retention job stopped")
}
