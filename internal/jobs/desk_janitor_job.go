package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultJanitorSchedule runs the janitor once a minute.
const DefaultJanitorSchedule = "@every 1m"

// DeskSweeper removes idle desks.
type DeskSweeper interface {
	Sweep(now time.Time, idle time.Duration) int
	Len() int
}

// DeskJanitorJob periodically closes idle desks.
type DeskJanitorJob struct {
	registry DeskSweeper
	idle     time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDeskJanitorJob creates the job. An empty schedule selects DefaultJanitorSchedule.
func NewDeskJanitorJob(registry DeskSweeper, idle time.Duration, schedule string, logger *zap.Logger) *DeskJanitorJob {
	if schedule == "" {
		schedule = DefaultJanitorSchedule
	}
	return &DeskJanitorJob{
		registry: registry,
		idle:     idle,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With(zap.String("component", "desk_janitor_job")),
	}
}

// RunOnce sweeps idle desks and reports how many were closed.
func (j *DeskJanitorJob) RunOnce() int {
	removed := j.registry.Sweep(j.now(), j.idle)
	if removed > 0 {
		j.logger.Info("idle desks closed", zap.Int("count", removed), zap.Int("open", j.registry.Len()))
	}
	return removed
}

// Start registers the sweep on the schedule and starts the scheduler.
func (j *DeskJanitorJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce() }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("desk janitor job started", zap.String("schedule", j.schedule), zap.Duration("idle", j.idle))
	return nil
}

// Stop stops the scheduler. A running sweep is allowed to finish.
func (j *DeskJanitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("desk janitor job stopped")
}
