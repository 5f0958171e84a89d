package schedule

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type ListJobsHandler interface {
	Handle(ctx context.Context, query queries.ListJobsQuery) (queries.ListJobsResponse, error)
}

// OverdueGauge receives the size of the last report.
type OverdueGauge interface {
	SetOverdueJobs(count int)
}

// OverdueJobsReportJob periodically counts uncompleted jobs whose delivery
// slot ended before the tick. Only the first page is read, so the count is
// capped at queries.MaxPageSize and has_more tells when it was cut.
type OverdueJobsReportJob struct {
	handler  ListJobsHandler
	gauge    OverdueGauge
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueJobsReportJob creates the report job. schedule is a cron
// expression with a leading seconds field.
func NewOverdueJobsReportJob(
	handler ListJobsHandler,
	gauge OverdueGauge,
	schedule string,
	logger *slog.Logger,
) *OverdueJobsReportJob {
	return &OverdueJobsReportJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_jobs_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *OverdueJobsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue jobs report started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OverdueJobsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue jobs report stopped")
}

func (j *OverdueJobsReportJob) run(ctx context.Context) {
	now := j.now().UTC()
	pending := true

	filter := queries.JobFilter{}
	filter.CompletedAt.IsNull = &pending
	filter.DeliverySlotEndsAt.Lt = &now

	page, err := queries.NewPageRequest(nil, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue jobs report failed", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, queries.NewListJobsQuery(filter, page))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue jobs report failed", "error", err)
		return
	}

	j.gauge.SetOverdueJobs(result.Totals.Count)
	j.logger.InfoContext(ctx, "Overdue jobs report",
		"count", result.Totals.Count,
		"has_more", result.PageInfo.HasNextPage,
		"income", result.Totals.Income.String(),
		"cost", result.Totals.Cost.String(),
	)
}
