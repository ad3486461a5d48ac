package persistence

import (
	"context"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var reportScheduleListSpec = listSpec{
	columns: map[string]string{
		"report_type": "report_type",
		"cadence":     "cadence",
		"format":      "format",
	},
	scopes: map[string]func(db *gorm.DB, value any) *gorm.DB{
		"active": func(db *gorm.DB, value any) *gorm.DB {
			return db.Where("active = ?", truthy(value))
		},
	},
	sortFields:  ReportScheduleSortFields,
	defaultSort: "next_run_at",
}

// GormReportScheduleRepository implements report.ScheduleRepository using GORM
type GormReportScheduleRepository struct {
	db *gorm.DB
}

// NewGormReportScheduleRepository creates a new GormReportScheduleRepository
func NewGormReportScheduleRepository(db *gorm.DB) *GormReportScheduleRepository {
	return &GormReportScheduleRepository{db: db}
}

// FindByID finds a schedule by its ID
func (r *GormReportScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.Schedule, error) {
	m, err := findByID[models.ReportScheduleModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of schedules matching the filter
func (r *GormReportScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]report.Schedule, int64, error) {
	rows, total, err := findPage[models.ReportScheduleModel](ctx, r.db, reportScheduleListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.ReportScheduleModel).ToDomain), total, nil
}

// FindDue returns active schedules whose next run is at or before now,
// oldest first.
func (r *GormReportScheduleRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]report.Schedule, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := make([]models.ReportScheduleModel, 0)
	if err := r.db.WithContext(ctx).
		Where("active = ? AND next_run_at <= ?", true, now).
		Order("next_run_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.ReportScheduleModel).ToDomain), nil
}

// Save creates or updates a schedule
func (r *GormReportScheduleRepository) Save(ctx context.Context, s *report.Schedule) error {
	return r.db.WithContext(ctx).Save(models.ReportScheduleModelFromDomain(s)).Error
}

// Delete removes a schedule
func (r *GormReportScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.ReportScheduleModel](ctx, r.db, id)
}

var _ report.ScheduleRepository = (*GormReportScheduleRepository)(nil)
