package persistence

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var leadListSpec = listSpec{
	searchColumns: []string{"name", "company", "email"},
	columns: map[string]string{
		"status":   "status",
		"source":   "source",
		"owner_id": "owner_id",
	},
	dateColumn:  "created_at",
	sortFields:  LeadSortFields,
	defaultSort: "created_at",
}

var opportunityListSpec = listSpec{
	searchColumns: []string{"name", "account_name"},
	columns: map[string]string{
		"stage":    "stage",
		"lead_id":  "lead_id",
		"owner_id": "owner_id",
	},
	dateColumn:  "expected_close",
	sortFields:  OpportunitySortFields,
	defaultSort: "created_at",
}

// GormLeadRepository implements sales.LeadRepository using GORM
type GormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a new GormLeadRepository
func NewGormLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

// FindByID finds a lead by its ID
func (r *GormLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Lead, error) {
	m, err := findByID[models.LeadModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of leads matching the filter
func (r *GormLeadRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Lead, int64, error) {
	rows, total, err := findPage[models.LeadModel](ctx, r.db, leadListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.LeadModel).ToDomain), total, nil
}

// ListAll returns every lead
func (r *GormLeadRepository) ListAll(ctx context.Context) ([]sales.Lead, error) {
	rows, err := findAll[models.LeadModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.LeadModel).ToDomain), nil
}

// Save creates or updates a lead
func (r *GormLeadRepository) Save(ctx context.Context, lead *sales.Lead) error {
	return r.db.WithContext(ctx).Save(models.LeadModelFromDomain(lead)).Error
}

// Delete removes a lead
func (r *GormLeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.LeadModel](ctx, r.db, id)
}

// GormOpportunityRepository implements sales.OpportunityRepository using GORM
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewGormOpportunityRepository creates a new GormOpportunityRepository
func NewGormOpportunityRepository(db *gorm.DB) *GormOpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

// FindByID finds an opportunity by its ID
func (r *GormOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Opportunity, error) {
	m, err := findByID[models.OpportunityModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of opportunities matching the filter
func (r *GormOpportunityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Opportunity, int64, error) {
	rows, total, err := findPage[models.OpportunityModel](ctx, r.db, opportunityListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.OpportunityModel).ToDomain), total, nil
}

// ListAll returns every opportunity
func (r *GormOpportunityRepository) ListAll(ctx context.Context) ([]sales.Opportunity, error) {
	rows, err := findAll[models.OpportunityModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.OpportunityModel).ToDomain), nil
}

// Save creates or updates an opportunity
func (r *GormOpportunityRepository) Save(ctx context.Context, o *sales.Opportunity) error {
	return r.db.WithContext(ctx).Save(models.OpportunityModelFromDomain(o)).Error
}

// Delete removes an opportunity
func (r *GormOpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.OpportunityModel](ctx, r.db, id)
}

var (
	_ sales.LeadRepository        = (*GormLeadRepository)(nil)
	_ sales.OpportunityRepository = (*GormOpportunityRepository)(nil)
)
