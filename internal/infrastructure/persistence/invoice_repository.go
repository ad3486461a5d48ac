package persistence

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var invoiceListSpec = listSpec{
	searchColumns: []string{"number", "customer_name"},
	columns: map[string]string{
		"status":        "status",
		"category":      "category",
		"customer_name": "customer_name",
	},
	dateColumn:  "issue_date",
	sortFields:  InvoiceSortFields,
	defaultSort: "issue_date",
}

// GormInvoiceRepository implements finance.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	m, err := findByID[models.InvoiceModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of invoices matching the filter and the total match count
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Invoice, int64, error) {
	rows, total, err := findPage[models.InvoiceModel](ctx, r.db, invoiceListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.InvoiceModel).ToDomain), total, nil
}

// ListAll returns every invoice
func (r *GormInvoiceRepository) ListAll(ctx context.Context) ([]finance.Invoice, error) {
	rows, err := findAll[models.InvoiceModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.InvoiceModel).ToDomain), nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *finance.Invoice) error {
	return translateUniqueViolation(r.db.WithContext(ctx).Save(models.InvoiceModelFromDomain(invoice)).Error)
}

// Delete removes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.InvoiceModel](ctx, r.db, id)
}

// ExistsByNumber reports whether an invoice number is taken
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ finance.InvoiceRepository = (*GormInvoiceRepository)(nil)
