package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const markerPurgeJobName = "purge_allocation_markers"

type markerPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeAllocationMarkersCommand) (int64, error)
}

// JobRecorder receives job outcomes, typically the metrics registry.
type JobRecorder interface {
	MarkersPurged(n int64)
	JobRun(job string, err error)
}

// MarkerPurgeJob periodically removes consumed-pallet markers of orders that
// are Delivered or Canceled and older than the retention.
type MarkerPurgeJob struct {
	handler   markerPurger
	recorder  JobRecorder
	schedule  string
	retention time.Duration
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewMarkerPurgeJob creates the job. schedule is a standard five-field cron
// spec or a descriptor such as "@hourly".
func NewMarkerPurgeJob(
	handler markerPurger,
	recorder JobRecorder,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *MarkerPurgeJob {
	return &MarkerPurgeJob{
		handler:   handler,
		recorder:  recorder,
		schedule:  schedule,
		retention: retention,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "marker_purge_job"),
	}
}

func (j *MarkerPurgeJob) Name() string {
	return markerPurgeJobName
}

// Start registers the schedule and starts the cron scheduler.
func (j *MarkerPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Marker purge job started",
		"schedule", j.schedule,
		"retention", j.retention.String(),
	)
	return nil
}

// RunOnce performs one purge and reports its outcome.
func (j *MarkerPurgeJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cmd, err := commands.NewPurgeAllocationMarkersCommand(j.retention)
	if err == nil {
		var purged int64
		purged, err = j.handler.Handle(ctx, cmd)
		if err == nil && j.recorder != nil {
			j.recorder.MarkersPurged(purged)
		}
		if err == nil && purged > 0 {
			j.logger.InfoContext(ctx, "Purged allocation markers", "count", purged)
		}
	}

	if j.recorder != nil {
		j.recorder.JobRun(markerPurgeJobName, err)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Marker purge job failed", "error", err)
	}
	return err
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *MarkerPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Marker purge job stopped")
}
