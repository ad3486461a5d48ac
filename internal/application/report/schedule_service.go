package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/scheduler"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Exporter renders and stores one report
type Exporter interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// ScheduleService manages recurring report schedules and runs them when
// the scheduler hands them over
type ScheduleService struct {
	repo      report.ScheduleRepository
	exporter  Exporter
	deliverer report.Deliverer
	metrics   *telemetry.ReportMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	repo report.ScheduleRepository,
	exporter Exporter,
	deliverer report.Deliverer,
	metrics *telemetry.ReportMetrics,
	log *zap.Logger,
) *ScheduleService {
	if metrics == nil {
		metrics = telemetry.NoopReportMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleService{
		repo:      repo,
		exporter:  exporter,
		deliverer: deliverer,
		metrics:   metrics,
		logger:    log,
		now:       time.Now,
	}
}

// Create validates and persists a new schedule
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*ScheduleResponse, error) {
	schedule, err := report.NewSchedule(
		report.ReportType(req.ReportType),
		report.Cadence(req.Cadence),
		req.Recipients,
		report.Format(req.Format),
		s.now(),
	)
	if err != nil {
		return nil, err
	}
	schedule.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	logger.Using(ctx, s.logger).Info("Report schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("report_type", string(schedule.ReportType)),
		zap.String("cadence", string(schedule.Cadence)),
		zap.Time("next_run_at", schedule.NextRunAt),
	)
	resp := ToScheduleResponse(schedule)
	return &resp, nil
}

// GetByID returns one schedule
func (s *ScheduleService) GetByID(ctx context.Context, id uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToScheduleResponse(schedule)
	return &resp, nil
}

// List returns one page of schedules
func (s *ScheduleService) List(ctx context.Context, filter ScheduleListFilter) ([]ScheduleResponse, int64, error) {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  map[string]any{},
	}
	if filter.ReportType != "" {
		f.Filters["report_type"] = filter.ReportType
	}
	if filter.Active != nil {
		f.Filters["active"] = *filter.Active
	}

	schedules, total, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return ToScheduleResponses(schedules), total, nil
}

// Delete removes a schedule
func (s *ScheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Using(ctx, s.logger).Info("Report schedule deleted", zap.String("schedule_id", id.String()))
	return nil
}

// Deactivate stops a schedule without deleting its history
func (s *ScheduleService) Deactivate(ctx context.Context, id uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Deactivate()
	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	resp := ToScheduleResponse(schedule)
	return &resp, nil
}

// DueJobs lists schedules due at now as scheduler jobs
func (s *ScheduleService) DueJobs(ctx context.Context, now time.Time, limit int) ([]*scheduler.Job, error) {
	due, err := s.repo.FindDue(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("find due schedules: %w", err)
	}
	jobs := make([]*scheduler.Job, len(due))
	for i := range due {
		jobs[i] = scheduler.NewJob(due[i].ID, string(due[i].ReportType), due[i].NextRunAt)
	}
	return jobs, nil
}

// Execute runs the schedule behind a scheduler job
func (s *ScheduleService) Execute(ctx context.Context, job *scheduler.Job) error {
	return s.RunSchedule(ctx, job.ScheduleID)
}

// RunSchedule exports the schedule's report and hands it to the deliverer.
// The schedule is advanced to its next run whether or not the run failed;
// failed runs are recorded on the schedule and never retried.
func (s *ScheduleService) RunSchedule(ctx context.Context, id uuid.UUID) error {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	now := s.now()
	if !schedule.IsDue(now) {
		// another instance already advanced it
		return nil
	}

	ctx, span := telemetry.StartSpan(ctx, "report.schedule.run",
		"schedule_id", id.String(), "report_type", string(schedule.ReportType))
	defer span.End()

	runErr := s.run(ctx, schedule, now)
	if runErr != nil {
		telemetry.RecordError(span, runErr)
		logger.Using(ctx, s.logger).Error("Scheduled report run failed",
			zap.String("schedule_id", id.String()),
			zap.String("report_type", string(schedule.ReportType)),
			zap.Error(runErr),
		)
	}

	schedule.MarkRun(now, runErr)
	if err := s.repo.Save(ctx, schedule); err != nil {
		return errors.Join(runErr, fmt.Errorf("save schedule: %w", err))
	}
	return runErr
}

// RunNow exports and delivers an active schedule immediately. The next run
// and the recorded run history are left untouched.
func (s *ScheduleService) RunNow(ctx context.Context, id uuid.UUID) error {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !schedule.Active {
		return shared.ErrInvalidState.WithMessage("schedule is not active")
	}

	ctx, span := telemetry.StartSpan(ctx, "report.schedule.run_now",
		"schedule_id", id.String(), "report_type", string(schedule.ReportType))
	defer span.End()

	if err := s.run(ctx, schedule, s.now()); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

func (s *ScheduleService) run(ctx context.Context, schedule *report.Schedule, now time.Time) error {
	result, err := s.exporter.Export(ctx, ExportRequest{
		ReportType:  string(schedule.ReportType),
		Format:      string(schedule.Format),
		RequestedBy: schedule.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	delivery := report.Delivery{
		ScheduleID:  schedule.ID,
		ReportType:  schedule.ReportType,
		Format:      schedule.Format,
		Recipients:  schedule.Recipients,
		Filename:    result.Artifact.Filename,
		ContentType: result.Artifact.ContentType,
		Size:        int64(len(result.Artifact.Data)),
		GeneratedAt: now,
	}
	if result.File != nil {
		fileID := result.File.ID
		delivery.FileID = &fileID
	}

	err = s.deliverer.Deliver(ctx, delivery)
	s.metrics.RecordDelivery(ctx, s.deliverer.Name(), err)
	if err != nil {
		return fmt.Errorf("deliver via %s: %w", s.deliverer.Name(), err)
	}

	logger.Using(ctx, s.logger).Info("Scheduled report delivered",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("deliverer", s.deliverer.Name()),
		zap.Strings("recipients", schedule.Recipients),
		zap.String("filename", delivery.Filename),
	)
	return nil
}

var (
	_ scheduler.JobSource   = (*ScheduleService)(nil)
	_ scheduler.JobExecutor = (*ScheduleService)(nil)
)
