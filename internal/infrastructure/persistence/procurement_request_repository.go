package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var procurementRequestListSpec = listSpec{
	searchColumns: []string{"request_number", "title", "vendor"},
	columns: map[string]string{
		"status":       "status",
		"department":   "department",
		"requested_by": "requested_by",
	},
	dateColumn:  "created_at",
	sortFields:  ProcurementRequestSortFields,
	defaultSort: "created_at",
}

// GormProcurementRequestRepository implements procurement.RequestRepository using GORM
type GormProcurementRequestRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormProcurementRequestRepository creates a new GormProcurementRequestRepository
func NewGormProcurementRequestRepository(db *gorm.DB) *GormProcurementRequestRepository {
	return &GormProcurementRequestRepository{db: db, now: time.Now}
}

// FindByID finds a purchase request by its ID
func (r *GormProcurementRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Request, error) {
	m, err := findByID[models.ProcurementRequestModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of purchase requests matching the filter
func (r *GormProcurementRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Request, int64, error) {
	rows, total, err := findPage[models.ProcurementRequestModel](ctx, r.db, procurementRequestListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.ProcurementRequestModel).ToDomain), total, nil
}

// ListAll returns every purchase request
func (r *GormProcurementRequestRepository) ListAll(ctx context.Context) ([]procurement.Request, error) {
	rows, err := findAll[models.ProcurementRequestModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.ProcurementRequestModel).ToDomain), nil
}

// Save creates or updates a purchase request
func (r *GormProcurementRequestRepository) Save(ctx context.Context, request *procurement.Request) error {
	return translateUniqueViolation(r.db.WithContext(ctx).Save(models.ProcurementRequestModelFromDomain(request)).Error)
}

// Delete removes a purchase request
func (r *GormProcurementRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.ProcurementRequestModel](ctx, r.db, id)
}

// NextNumber returns the next request number for the current month,
// formatted PR-YYYYMM-NNNN. Numbers are unique-indexed, so a concurrent
// writer that loses the race gets shared.ErrAlreadyExists on Save.
func (r *GormProcurementRequestRepository) NextNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("PR-%s-", r.now().Format("200601"))

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProcurementRequestModel{}).
		Where("request_number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

var _ procurement.RequestRepository = (*GormProcurementRequestRepository)(nil)
