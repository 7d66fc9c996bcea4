package jobs

import (
	"fmt"
)

// ScheduledJob is a background job with its own scheduler.
type ScheduledJob interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops the housekeeping jobs as one unit.
type JobManager struct {
	jobs    []ScheduledJob
	started []ScheduledJob
}

func NewJobManager(jobs ...ScheduledJob) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts the jobs in order. If one fails, the ones already running
// are stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops running jobs in reverse start order and waits for each.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
