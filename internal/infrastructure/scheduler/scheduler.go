// Package scheduler runs due report schedules on a bounded worker pool.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus represents the status of a scheduled job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
	JobStatusSkipped JobStatus = "SKIPPED"
)

// Job is one due run of a report schedule
type Job struct {
	ScheduleID  uuid.UUID
	ReportType  string
	DueAt       time.Time
	Status      JobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// NewJob creates a pending job for a schedule
func NewJob(scheduleID uuid.UUID, reportType string, dueAt time.Time) *Job {
	return &Job{
		ScheduleID: scheduleID,
		ReportType: reportType,
		DueAt:      dueAt,
		Status:     JobStatusPending,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// Skip marks a job that another instance is already running
func (j *Job) Skip() {
	now := time.Now()
	j.Status = JobStatusSkipped
	j.CompletedAt = &now
}

// lockKey names the run lock shared by every instance
func (j *Job) lockKey() string {
	return "report-schedule:" + j.ScheduleID.String()
}

// JobExecutor is the interface for executing report jobs
type JobExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	Enabled           bool
	MaxConcurrentJobs int
	JobTimeout        time.Duration
	// LockTTL bounds how long a crashed instance can hold a schedule
	LockTTL   time.Duration
	QueueSize int
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Enabled:           true,
		MaxConcurrentJobs: 3,
		JobTimeout:        10 * time.Minute,
		LockTTL:           15 * time.Minute,
		QueueSize:         100,
	}
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	d := DefaultSchedulerConfig()
	if c.MaxConcurrentJobs <= 0 {
		c.MaxConcurrentJobs = d.MaxConcurrentJobs
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = d.JobTimeout
	}
	if c.LockTTL <= 0 {
		c.LockTTL = d.LockTTL
	}
	if c.LockTTL < c.JobTimeout {
		c.LockTTL = c.JobTimeout
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	return c
}

// Scheduler executes submitted jobs on a fixed pool of workers. Each job
// runs under a lock keyed by its schedule, so a schedule due on several
// instances at once runs on only one of them.
type Scheduler struct {
	config   SchedulerConfig
	executor JobExecutor
	locker   cache.Locker
	logger   *zap.Logger

	jobs      chan *Job
	inFlight  map[uuid.UUID]bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a new scheduler instance. A nil locker means a
// process-local one.
func NewScheduler(config SchedulerConfig, executor JobExecutor, locker cache.Locker, logger *zap.Logger) *Scheduler {
	config = config.withDefaults()
	if locker == nil {
		locker = cache.NewInMemoryLocker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		config:   config,
		executor: executor,
		locker:   locker,
		logger:   logger,
		jobs:     make(chan *Job, config.QueueSize),
		inFlight: make(map[uuid.UUID]bool),
	}
}

// Start starts the worker pool
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.config.MaxConcurrentJobs; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.logger.Info("Report scheduler started",
		zap.Int("workers", s.config.MaxConcurrentJobs),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)
	return nil
}

// Stop cancels running jobs and waits for the workers to exit
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Report scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Report scheduler stop timed out")
		return ctx.Err()
	}
}

// SubmitJob queues a job. A schedule that is already queued or running
// is rejected with ErrJobAlreadyQueued.
func (s *Scheduler) SubmitJob(job *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return ErrSchedulerNotRunning
	}
	if s.inFlight[job.ScheduleID] {
		return ErrJobAlreadyQueued
	}

	select {
	case s.jobs <- job:
		s.inFlight[job.ScheduleID] = true
		s.logger.Debug("Job submitted",
			zap.String("schedule_id", job.ScheduleID.String()),
			zap.String("report_type", job.ReportType),
		)
		return nil
	default:
		return ErrJobQueueFull
	}
}

// IsRunning reports whether the worker pool is started
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// worker processes jobs from the queue
func (s *Scheduler) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Worker stopping", zap.Int("worker_id", workerID))
			return
		case job := <-s.jobs:
			s.processJob(ctx, job, workerID)
			s.mu.Lock()
			delete(s.inFlight, job.ScheduleID)
			s.mu.Unlock()
		}
	}
}

// processJob executes a single job under its run lock
func (s *Scheduler) processJob(ctx context.Context, job *Job, workerID int) {
	lock, err := s.locker.Obtain(ctx, job.lockKey(), s.config.LockTTL)
	if errors.Is(err, cache.ErrNotObtained) {
		job.Skip()
		s.logger.Debug("Schedule is running elsewhere, skipping",
			zap.String("schedule_id", job.ScheduleID.String()),
		)
		return
	}
	if err != nil {
		job.Fail(err.Error())
		s.logger.Error("Failed to obtain run lock",
			zap.String("schedule_id", job.ScheduleID.String()),
			zap.Error(err),
		)
		return
	}
	defer func() {
		// release with a fresh context so a cancelled run still frees its lock
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil {
			s.logger.Warn("Failed to release run lock",
				zap.String("schedule_id", job.ScheduleID.String()),
				zap.Error(err),
			)
		}
	}()

	job.Start()
	s.logger.Info("Processing job",
		zap.Int("worker_id", workerID),
		zap.String("schedule_id", job.ScheduleID.String()),
		zap.String("report_type", job.ReportType),
	)

	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	if err := s.execute(jobCtx, job); err != nil {
		job.Fail(err.Error())
		s.logger.Error("Job failed",
			zap.Int("worker_id", workerID),
			zap.String("schedule_id", job.ScheduleID.String()),
			zap.String("report_type", job.ReportType),
			zap.Error(err),
		)
		return
	}

	job.Complete()
	s.logger.Info("Job completed successfully",
		zap.Int("worker_id", workerID),
		zap.String("schedule_id", job.ScheduleID.String()),
		zap.String("report_type", job.ReportType),
	)
}

// execute runs the executor, turning a panic into an error so one bad
// schedule cannot take down a worker
func (s *Scheduler) execute(ctx context.Context, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("job panicked")
			s.logger.Error("Job panicked",
				zap.String("schedule_id", job.ScheduleID.String()),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()
	return s.executor.Execute(ctx, job)
}
