package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	mu    sync.Mutex
	jobs  []*Job
	err   error
	calls int
	limit int
}

func (s *stubSource) DueJobs(_ context.Context, _ time.Time, limit int) ([]*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.limit = limit
	return s.jobs, s.err
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestDefaultReportScheduleRunnerConfig(t *testing.T) {
	cfg := DefaultReportScheduleRunnerConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, time.Minute, cfg.TickInterval)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 3, cfg.Scheduler.MaxConcurrentJobs)
}

func TestReportScheduleRunner_PollSubmitsDueJobs(t *testing.T) {
	release := make(chan struct{})
	exec := funcExecutor(func(context.Context, *Job) error {
		<-release
		return nil
	})
	s := startScheduler(t, DefaultSchedulerConfig(), exec, nil, nil)
	defer close(release)

	source := &stubSource{jobs: []*Job{
		NewJob(uuid.New(), "finance", time.Now()),
		NewJob(uuid.New(), "hr", time.Now()),
	}}
	runner := NewReportScheduleRunner(ReportScheduleRunnerConfig{Enabled: true, BatchSize: 10}, source, s, nil)

	assert.Equal(t, 2, runner.Poll(context.Background()))
	assert.Equal(t, 10, source.limit)
	require.NotNil(t, runner.LastRunAt())

	// the same schedules are still running, so nothing new is queued
	assert.Equal(t, 0, runner.Poll(context.Background()))
}

func TestReportScheduleRunner_SourceError(t *testing.T) {
	logger, logs := observedLogger()
	s := startScheduler(t, DefaultSchedulerConfig(), funcExecutor(func(context.Context, *Job) error { return nil }), nil, nil)
	runner := NewReportScheduleRunner(DefaultReportScheduleRunnerConfig(), &stubSource{err: errors.New("db down")}, s, logger)

	assert.Equal(t, 0, runner.Poll(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("Failed to fetch due report schedules").Len())
}

func TestReportScheduleRunner_StartPollsImmediately(t *testing.T) {
	source := &stubSource{}
	s := NewScheduler(DefaultSchedulerConfig(), funcExecutor(func(context.Context, *Job) error { return nil }), nil, nil)
	runner := NewReportScheduleRunner(ReportScheduleRunnerConfig{Enabled: true, TickInterval: time.Hour}, source, s, nil)

	require.NoError(t, runner.Start(context.Background()))
	assert.Eventually(t, func() bool { return source.callCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, runner.IsRunning())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runner.Stop(ctx))
	assert.False(t, runner.IsRunning())
	assert.False(t, s.IsRunning())
}

func TestReportScheduleRunner_Disabled(t *testing.T) {
	source := &stubSource{}
	s := NewScheduler(DefaultSchedulerConfig(), funcExecutor(func(context.Context, *Job) error { return nil }), nil, nil)
	runner := NewReportScheduleRunner(ReportScheduleRunnerConfig{Enabled: false}, source, s, nil)

	require.NoError(t, runner.Start(context.Background()))
	assert.False(t, runner.IsRunning())
	assert.False(t, s.IsRunning())
	assert.Equal(t, 0, source.callCount())
}
