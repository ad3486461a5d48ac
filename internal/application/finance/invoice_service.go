package finance

import (
	"context"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService provides invoice operations and lifecycle transitions
type InvoiceService struct {
	repo finance.InvoiceRepository
	now  func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(repo finance.InvoiceRepository) *InvoiceService {
	return &InvoiceService{repo: repo, now: time.Now}
}

// Create creates a draft invoice. Invoice numbers are unique.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.repo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists.WithMessage("invoice number " + req.Number + " is already used")
	}

	invoice, err := finance.NewInvoice(req.Number, req.CustomerName, req.Amount, req.IssueDate, req.DueDate)
	if err != nil {
		return nil, err
	}
	invoice.Category = req.Category
	invoice.Notes = req.Notes
	invoice.OwnerID = req.OwnerID

	if err := s.repo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// GetByID returns an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns one page of invoices
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
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
	if filter.CustomerName != "" {
		domainFilter.Filters["customer_name"] = filter.CustomerName
	}

	invoices, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInvoiceResponses(invoices), total, nil
}

// Update edits an invoice that is not yet paid or cancelled
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	return s.mutate(ctx, id, func(i *finance.Invoice) error {
		return i.Update(req.CustomerName, req.Amount, req.DueDate, req.Category, req.Notes)
	})
}

// Send marks a draft invoice as sent
func (s *InvoiceService) Send(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.mutate(ctx, id, (*finance.Invoice).Send)
}

// MarkPaid settles a sent or overdue invoice
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.mutate(ctx, id, func(i *finance.Invoice) error {
		return i.MarkPaid(s.now())
	})
}

// Cancel voids a draft or sent invoice
func (s *InvoiceService) Cancel(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.mutate(ctx, id, (*finance.Invoice).Cancel)
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// MarkOverdueInvoices flags every sent invoice past its due date and
// returns how many were changed
func (s *InvoiceService) MarkOverdueInvoices(ctx context.Context) (int, error) {
	invoices, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now()
	changed := 0
	for i := range invoices {
		inv := &invoices[i]
		if !inv.IsPastDue(now) {
			continue
		}
		if err := inv.MarkOverdue(); err != nil {
			return changed, err
		}
		if err := s.repo.Save(ctx, inv); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (s *InvoiceService) mutate(ctx context.Context, id uuid.UUID, fn func(*finance.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(invoice); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}
