// Package schedule provides scheduled background tasks for the logistics
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// only read state.
//
// # Available Jobs
//
// 1. OverdueJobsReportJob - logs and exports the uncompleted delivery jobs whose
// slot has already ended
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	report := schedule.NewOverdueJobsReportJob(listJobsHandler, metrics, "0 */5 * * * *", logger)
//	jobManager := schedule.NewJobManager(report)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package schedule
