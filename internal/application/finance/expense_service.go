package finance

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseService provides expense operations and approvals
type ExpenseService struct {
	repo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create records a pending expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := finance.NewExpense(req.Title, req.Amount, req.Date, finance.ExpenseCategory(req.Category))
	if err != nil {
		return nil, err
	}
	expense.Description = req.Description
	expense.OwnerID = req.OwnerID

	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// GetByID returns an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// List returns one page of expenses
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		From:     filter.FromDate,
		To:       filter.ToDate,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	expenses, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToExpenseResponses(expenses), total, nil
}

// Update edits a pending expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	return s.mutate(ctx, id, func(e *finance.Expense) error {
		return e.Update(req.Title, req.Amount, req.Date, finance.ExpenseCategory(req.Category), req.Description)
	})
}

// Approve approves a pending expense
func (s *ExpenseService) Approve(ctx context.Context, id uuid.UUID, reviewer *uuid.UUID) (*ExpenseResponse, error) {
	return s.mutate(ctx, id, func(e *finance.Expense) error {
		return e.Approve(reviewer)
	})
}

// Reject rejects a pending expense with a reason
func (s *ExpenseService) Reject(ctx context.Context, id uuid.UUID, reviewer *uuid.UUID, req RejectExpenseRequest) (*ExpenseResponse, error) {
	return s.mutate(ctx, id, func(e *finance.Expense) error {
		return e.Reject(reviewer, req.Reason)
	})
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ExpenseService) mutate(ctx context.Context, id uuid.UUID, fn func(*finance.Expense) error) (*ExpenseResponse, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(expense); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}
