package persistence

import (
	"context"
	"strings"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var employeeListSpec = listSpec{
	searchColumns: []string{"first_name", "last_name", "email", "employee_code"},
	columns: map[string]string{
		"status":     "status",
		"department": "department",
		"position":   "position",
	},
	dateColumn:  "hire_date",
	sortFields:  EmployeeSortFields,
	defaultSort: "created_at",
}

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	m, err := findByID[models.EmployeeModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Employee, int64, error) {
	rows, total, err := findPage[models.EmployeeModel](ctx, r.db, employeeListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.EmployeeModel).ToDomain), total, nil
}

// ListAll returns every employee regardless of status
func (r *GormEmployeeRepository) ListAll(ctx context.Context) ([]hr.Employee, error) {
	rows, err := findAll[models.EmployeeModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.EmployeeModel).ToDomain), nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	return translateUniqueViolation(r.db.WithContext(ctx).Save(models.EmployeeModelFromDomain(employee)).Error)
}

// Delete removes an employee
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.EmployeeModel](ctx, r.db, id)
}

// ExistsByEmail checks email uniqueness case-insensitively, optionally
// ignoring one employee (the one being updated).
func (r *GormEmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
