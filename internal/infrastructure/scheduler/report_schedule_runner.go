package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultTickInterval is how often the runner polls for due schedules
const defaultTickInterval = 1 * time.Minute

// JobSource lists the schedules that are due at now
type JobSource interface {
	DueJobs(ctx context.Context, now time.Time, limit int) ([]*Job, error)
}

// ReportScheduleRunnerConfig holds configuration for the polling runner
type ReportScheduleRunnerConfig struct {
	Enabled      bool
	TickInterval time.Duration
	// BatchSize caps how many due schedules are fetched per tick
	BatchSize int
	Scheduler SchedulerConfig
}

// DefaultReportScheduleRunnerConfig returns default runner configuration
func DefaultReportScheduleRunnerConfig() ReportScheduleRunnerConfig {
	return ReportScheduleRunnerConfig{
		Enabled:      true,
		TickInterval: defaultTickInterval,
		BatchSize:    50,
		Scheduler:    DefaultSchedulerConfig(),
	}
}

// ReportScheduleRunner polls a JobSource on a ticker and feeds due
// schedules into the worker pool
type ReportScheduleRunner struct {
	config    ReportScheduleRunnerConfig
	source    JobSource
	scheduler *Scheduler
	logger    *zap.Logger
	now       func() time.Time

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRunAt *time.Time
}

// NewReportScheduleRunner creates a runner over an existing worker pool
func NewReportScheduleRunner(config ReportScheduleRunnerConfig, source JobSource, scheduler *Scheduler, logger *zap.Logger) *ReportScheduleRunner {
	if config.TickInterval <= 0 {
		config.TickInterval = defaultTickInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 50
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportScheduleRunner{
		config:    config,
		source:    source,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

// Start starts the worker pool and the polling loop. A disabled runner
// does nothing.
func (r *ReportScheduleRunner) Start(ctx context.Context) error {
	if !r.config.Enabled {
		r.logger.Info("Report schedule runner disabled")
		return nil
	}

	r.mu.Lock()
	if r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = true
	r.mu.Unlock()

	if err := r.scheduler.Start(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(ctx)

	r.logger.Info("Report schedule runner started",
		zap.Duration("tick_interval", r.config.TickInterval),
		zap.Int("batch_size", r.config.BatchSize),
	)
	return nil
}

// Stop stops polling, then drains the worker pool
func (r *ReportScheduleRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = false
	r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if err := r.scheduler.Stop(ctx); err != nil {
			r.logger.Warn("Error stopping underlying scheduler", zap.Error(err))
		}
		r.logger.Info("Report schedule runner stopped")
		return nil
	case <-ctx.Done():
		r.logger.Warn("Report schedule runner stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the polling loop is active
func (r *ReportScheduleRunner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

// LastRunAt returns when the runner last polled, or nil before the first tick
func (r *ReportScheduleRunner) LastRunAt() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRunAt
}

func (r *ReportScheduleRunner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.TickInterval)
	defer ticker.Stop()

	r.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Poll(ctx)
		}
	}
}

// Poll fetches due schedules once and submits them. It returns the number
// of jobs submitted.
func (r *ReportScheduleRunner) Poll(ctx context.Context) int {
	now := r.now()
	r.mu.Lock()
	r.lastRunAt = &now
	r.mu.Unlock()

	jobs, err := r.source.DueJobs(ctx, now, r.config.BatchSize)
	if err != nil {
		r.logger.Error("Failed to fetch due report schedules", zap.Error(err))
		return 0
	}

	submitted := 0
	for _, job := range jobs {
		err := r.scheduler.SubmitJob(job)
		switch {
		case err == nil:
			submitted++
		case errors.Is(err, ErrJobAlreadyQueued):
			// still running from an earlier tick
		default:
			r.logger.Warn("Failed to submit report job",
				zap.String("schedule_id", job.ScheduleID.String()),
				zap.String("report_type", job.ReportType),
				zap.Error(err),
			)
		}
	}
	if len(jobs) > 0 {
		r.logger.Debug("Due report schedules submitted",
			zap.Int("due", len(jobs)),
			zap.Int("submitted", submitted),
		)
	}
	return submitted
}
