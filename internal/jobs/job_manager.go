package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Settings configures the scheduled jobs.
type Settings struct {
	DeskIdle          time.Duration
	JanitorSchedule   string
	JournalRetention  time.Duration
	RetentionSchedule string
}

// JobManager coordinates all scheduled jobs in the application.
// The retention job only exists when a journal is configured.
type JobManager struct {
	deskJanitorJob      *DeskJanitorJob
	journalRetentionJob *JournalRetentionJob
}

// NewJobManager creates the jobs. journal may be nil.
func NewJobManager(registry DeskSweeper, journal JournalPruner, settings Settings, logger *zap.Logger) *JobManager {
	jm := &JobManager{
		deskJanitorJob: NewDeskJanitorJob(registry, settings.DeskIdle, settings.JanitorSchedule, logger),
	}
	if journal != nil && settings.JournalRetention > 0 {
		jm.journalRetentionJob = NewJournalRetentionJob(journal, settings.JournalRetention, settings.RetentionSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deskJanitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start desk janitor job: %w", err)
	}

	if jm.journalRetentionJob != nil {
		if err := jm.journalRetentionJob.Start(); err != nil {
			jm.deskJanitorJob.Stop()
			return fmt.Errorf("failed to start journal retention job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deskJanitorJob.Stop()
	if jm.journalRetentionJob != nil {
		jm.journalRetentionJob.Stop()
	}
}
