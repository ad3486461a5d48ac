package finance

import (
	"context"
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

var issued = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func newDraft(t *testing.T, number string, amount int64) *finance.Invoice {
	t.Helper()
	due := issued.AddDate(0, 0, 30)
	inv, err := finance.NewInvoice(number, "Globex", decimal.NewFromInt(amount), issued, &due)
	require.NoError(t, err)
	return inv
}

func TestInvoiceService_Create(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	owner := uuid.New()

	repo.On("ExistsByNumber", mock.Anything, "INV-001").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Invoice")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateInvoiceRequest{
		Number:       "INV-001",
		CustomerName: "Globex",
		Amount:       decimal.NewFromInt(1200),
		IssueDate:    issued,
		Category:     "consulting",
		OwnerID:      &owner,
	})

	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "consulting", resp.Category)
	assert.Equal(t, &owner, resp.OwnerID)
	repo.AssertExpectations(t)
}

func TestInvoiceService_CreateDuplicateNumber(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)

	repo.On("ExistsByNumber", mock.Anything, "INV-001").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{
		Number: "INV-001", CustomerName: "Globex", Amount: decimal.NewFromInt(1), IssueDate: issued,
	})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_CreateRejectsDueBeforeIssue(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	due := issued.AddDate(0, 0, -1)

	repo.On("ExistsByNumber", mock.Anything, "INV-002").Return(false, nil)

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{
		Number: "INV-002", CustomerName: "Globex", Amount: decimal.NewFromInt(1), IssueDate: issued, DueDate: &due,
	})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestInvoiceService_Lifecycle(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	paidAt := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	inv := newDraft(t, "INV-010", 500)
	repo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	repo.On("Save", mock.Anything, inv).Return(nil)

	_, err := svc.MarkPaid(context.Background(), inv.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	resp, err := svc.Send(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", resp.Status)

	resp, err = svc.MarkPaid(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
	require.NotNil(t, resp.PaidAt)
	assert.True(t, paidAt.Equal(*resp.PaidAt))

	_, err = svc.Cancel(context.Background(), inv.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	_, err = svc.Update(context.Background(), inv.ID, UpdateInvoiceRequest{CustomerName: "Initech", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestInvoiceService_GetByIDNotFound(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	id := uuid.New()

	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInvoiceService_ListMapsFilter(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	inv := newDraft(t, "INV-020", 10)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "draft" &&
			f.Filters["customer_name"] == "Globex" &&
			f.Page == 2 && f.PageSize == 5
	})).Return([]finance.Invoice{*inv}, int64(6), nil)

	items, total, err := svc.List(context.Background(), InvoiceListFilter{
		Status: "draft", CustomerName: "Globex", Page: 2, PageSize: 5,
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "INV-020", items[0].Number)
	assert.Equal(t, int64(6), total)
}

func TestInvoiceService_MarkOverdueInvoices(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := NewInvoiceService(repo)
	svc.now = func() time.Time { return issued.AddDate(0, 2, 0) }

	late := newDraft(t, "INV-030", 100)
	require.NoError(t, late.Send())
	draft := newDraft(t, "INV-031", 100)

	repo.On("ListAll", mock.Anything).Return([]finance.Invoice{*late, *draft}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(i *finance.Invoice) bool {
		return i.Number == "INV-030" && i.Status == finance.InvoiceStatusOverdue
	})).Return(nil).Once()

	changed, err := svc.MarkOverdueInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	repo.AssertExpectations(t)
}
