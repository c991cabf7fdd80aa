package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob logs the size of the warehouse backlog once a day at the
// bid cutoff, when the current intake cycle closes.
type BacklogReportJob struct {
	packerOrdersHandler queries.GetPackerOrdersQueryHandler
	sorterOrdersHandler queries.GetSorterOrdersQueryHandler
	cutoff              queries.BidCutoff
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewBacklogReportJob creates a job that reports packer and sorter backlog
// counts at the given cutoff.
func NewBacklogReportJob(
	packerOrdersHandler queries.GetPackerOrdersQueryHandler,
	sorterOrdersHandler queries.GetSorterOrdersQueryHandler,
	cutoff queries.BidCutoff,
	logger *slog.Logger,
) *BacklogReportJob {
	return &BacklogReportJob{
		packerOrdersHandler: packerOrdersHandler,
		sorterOrdersHandler: sorterOrdersHandler,
		cutoff:              cutoff,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "backlog_report_job"),
	}
}

// Start schedules the backlog report at the daily bid cutoff.
func (j *BacklogReportJob) Start() error {
	spec := fmt.Sprintf("%d %d %d * * *", j.cutoff.Second, j.cutoff.Minute, j.cutoff.Hour)

	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		cutoff := j.cutoff.Today(time.Now())

		packerQuery, queryErr := queries.NewGetPackerOrdersQuery(cutoff)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", queryErr)
			return
		}
		packerOrders, queryErr := j.packerOrdersHandler.Handle(ctx, packerQuery)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", queryErr)
			return
		}

		sorterQuery, queryErr := queries.NewGetSorterOrdersQuery(cutoff)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", queryErr)
			return
		}
		sorterOrders, queryErr := j.sorterOrdersHandler.Handle(ctx, sorterQuery)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", queryErr)
			return
		}

		j.logger.InfoContext(ctx, "Cycle closed",
			"cutoff", cutoff,
			"packer_backlog", len(packerOrders),
			"sorter_backlog", len(sorterOrders),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", spec)
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
