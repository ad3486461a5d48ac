package persistence

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var expenseListSpec = listSpec{
	searchColumns: []string{"title", "description"},
	columns: map[string]string{
		"status":   "status",
		"category": "category",
	},
	dateColumn:  "expense_date",
	sortFields:  ExpenseSortFields,
	defaultSort: "expense_date",
}

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	m, err := findByID[models.ExpenseModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of expenses matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, int64, error) {
	rows, total, err := findPage[models.ExpenseModel](ctx, r.db, expenseListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.ExpenseModel).ToDomain), total, nil
}

// ListAll returns every expense
func (r *GormExpenseRepository) ListAll(ctx context.Context) ([]finance.Expense, error) {
	rows, err := findAll[models.ExpenseModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.ExpenseModel).ToDomain), nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Save(models.ExpenseModelFromDomain(expense)).Error
}

// Delete removes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.ExpenseModel](ctx, r.db, id)
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
