package jobs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJob struct{ mock.Mock }

func (m *MockJob) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockJob) Start() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func TestJobManager_StartAndStop(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	mock.InOrder(
		first.On("Start").Return(nil).Once(),
		second.On("Start").Return(nil).Once(),
		second.On("Stop").Once(),
		first.On("Stop").Once(),
	)

	manager := jobs.NewJobManager(first, second)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
	manager.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestJobManager_StartFailureStopsRunningJobs(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()
	second.On("Name").Return("purge_allocation_markers")

	manager := jobs.NewJobManager(first, second)
	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start purge_allocation_markers job")
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}
