// Package jobs provides scheduled background tasks for shipdesk.
//
// Jobs are cron based (github.com/robfig/cron/v3) and managed together by
// JobManager:
//
//	jobManager := jobs.NewJobManager(registry, journal, jobs.Settings{...}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. DeskJanitorJob drops desks nobody has touched for the configured idle time.
// 2. JournalRetentionJob deletes action journal entries older than the retention period.
//
// Every tick is also callable directly through RunOnce, which is what the tests use.
package jobs
