package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var spentOn = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func newExpense(t *testing.T, amount int64, category finance.ExpenseCategory) *finance.Expense {
	t.Helper()
	e, err := finance.NewExpense("Flights", decimal.NewFromInt(amount), spentOn, category)
	require.NoError(t, err)
	return e
}

func TestExpenseService_Create(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := NewExpenseService(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Expense")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateExpenseRequest{
		Title:       "Flights",
		Amount:      decimal.NewFromInt(420),
		Date:        spentOn,
		Category:    "travel",
		Description: "Client visit",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "travel", resp.Category)
	assert.Equal(t, "Client visit", resp.Description)
}

func TestExpenseService_CreateInvalidCategory(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := NewExpenseService(repo)

	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		Title: "Snacks", Amount: decimal.NewFromInt(5), Date: spentOn, Category: "food",
	})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExpenseService_ApproveOnce(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := NewExpenseService(repo)
	reviewer := uuid.New()

	e := newExpense(t, 300, finance.ExpenseCategoryTravel)
	repo.On("FindByID", mock.Anything, e.ID).Return(e, nil)
	repo.On("Save", mock.Anything, e).Return(nil)

	resp, err := svc.Approve(context.Background(), e.ID, &reviewer)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, &reviewer, resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)

	_, err = svc.Reject(context.Background(), e.ID, &reviewer, RejectExpenseRequest{Reason: "late"})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestExpenseService_Reject(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := NewExpenseService(repo)

	e := newExpense(t, 80, finance.ExpenseCategoryOffice)
	repo.On("FindByID", mock.Anything, e.ID).Return(e, nil)
	repo.On("Save", mock.Anything, e).Return(nil)

	resp, err := svc.Reject(context.Background(), e.ID, nil, RejectExpenseRequest{Reason: "No receipt"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "No receipt", resp.RejectionReason)
}

func TestExpenseService_SaveErrorPropagates(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := NewExpenseService(repo)
	boom := errors.New("db down")

	e := newExpense(t, 80, finance.ExpenseCategoryOffice)
	repo.On("FindByID", mock.Anything, e.ID).Return(e, nil)
	repo.On("Save", mock.Anything, e).Return(boom)

	_, err := svc.Approve(context.Background(), e.ID, nil)
	assert.ErrorIs(t, err, boom)
}

func TestStatsService_Stats(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	expenses := new(MockExpenseRepository)
	svc := NewStatsService(invoices, expenses)

	paid := newDraft(t, "INV-1", 1000)
	require.NoError(t, paid.Send())
	require.NoError(t, paid.MarkPaid(issued))
	sent := newDraft(t, "INV-2", 400)
	require.NoError(t, sent.Send())

	approved := newExpense(t, 150, finance.ExpenseCategoryTravel)
	require.NoError(t, approved.Approve(nil))
	pending := newExpense(t, 50, finance.ExpenseCategoryTravel)

	invoices.On("ListAll", mock.Anything).Return([]finance.Invoice{*paid, *sent}, nil)
	expenses.On("ListAll", mock.Anything).Return([]finance.Expense{*approved, *pending}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1400).Equal(stats.TotalRevenue))
	assert.True(t, decimal.NewFromInt(1000).Equal(stats.PaidRevenue))
	assert.True(t, decimal.NewFromInt(400).Equal(stats.OutstandingRevenue))
	assert.True(t, decimal.NewFromInt(200).Equal(stats.TotalExpenses))
	assert.True(t, decimal.NewFromInt(150).Equal(stats.ApprovedExpenses))
	assert.True(t, decimal.NewFromInt(800).Equal(stats.NetProfit))
	assert.Equal(t, 2, stats.InvoiceCount)
}

func TestStatsService_StatsError(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	expenses := new(MockExpenseRepository)
	svc := NewStatsService(invoices, expenses)

	invoices.On("ListAll", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.Stats(context.Background())
	assert.ErrorContains(t, err, "list invoices")
}
