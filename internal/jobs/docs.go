// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs use github.com/robfig/cron/v3 and run outside the request path. None
// of them touches orders, pallets or shipments.
//
// # Available Jobs
//
// MarkerPurgeJob removes consumed-pallet markers of Delivered or Canceled
// orders once they are older than MARKER_RETENTION. It runs on
// MARKER_PURGE_SCHEDULE (hourly by default) and skips a tick while the
// previous run is still going.
//
// # Usage
//
//	purge := jobs.NewMarkerPurgeJob(purgeHandler, metricsRegistry, "@hourly", 720*time.Hour, logger)
//	jobManager := jobs.NewJobManager(purge)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; the next tick tries again.
package jobs
