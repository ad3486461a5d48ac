package finance

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceStatuses lists every valid status in display order
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled,
}

// IsValid checks if the status is a known InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice is a billable document issued to a customer.
//
// Lifecycle: draft -> sent -> paid, sent -> overdue -> paid, and draft or
// sent -> cancelled.
type Invoice struct {
	shared.BaseEntity
	Number       string
	CustomerName string
	Amount       decimal.Decimal
	IssueDate    time.Time
	DueDate      *time.Time
	PaidAt       *time.Time
	Category     string
	Status       InvoiceStatus
	Notes        string
	OwnerID      *uuid.UUID
}

// NewInvoice creates a draft invoice
func NewInvoice(number, customerName string, amount decimal.Decimal, issueDate time.Time, dueDate *time.Time) (*Invoice, error) {
	if err := shared.ValidateRequired("number", number); err != nil {
		return nil, err
	}
	if err := shared.ValidateRequired("customer_name", customerName); err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return nil, err
	}
	if dueDate != nil && dueDate.Before(issueDate) {
		return nil, shared.ErrInvalidInput.WithMessage("due_date cannot be before issue_date")
	}

	return &Invoice{
		BaseEntity:   shared.NewBaseEntity(),
		Number:       number,
		CustomerName: customerName,
		Amount:       amount,
		IssueDate:    issueDate,
		DueDate:      dueDate,
		Status:       InvoiceStatusDraft,
	}, nil
}

// Update changes the editable fields. Paid and cancelled invoices are frozen.
func (i *Invoice) Update(customerName string, amount decimal.Decimal, dueDate *time.Time, category, notes string) error {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return shared.ErrInvalidState.WithMessage("cannot edit a " + string(i.Status) + " invoice")
	}
	if err := shared.ValidateRequired("customer_name", customerName); err != nil {
		return err
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return err
	}
	if dueDate != nil && dueDate.Before(i.IssueDate) {
		return shared.ErrInvalidInput.WithMessage("due_date cannot be before issue_date")
	}

	i.CustomerName = customerName
	i.Amount = amount
	i.DueDate = dueDate
	i.Category = category
	i.Notes = notes
	i.Touch()
	return nil
}

// Send marks a draft invoice as sent
func (i *Invoice) Send() error {
	if i.Status != InvoiceStatusDraft {
		return shared.ErrInvalidState.WithMessage("only draft invoices can be sent")
	}
	i.Status = InvoiceStatusSent
	i.Touch()
	return nil
}

// MarkOverdue flags a sent invoice as overdue
func (i *Invoice) MarkOverdue() error {
	if i.Status != InvoiceStatusSent {
		return shared.ErrInvalidState.WithMessage("only sent invoices can become overdue")
	}
	i.Status = InvoiceStatusOverdue
	i.Touch()
	return nil
}

// MarkPaid settles a sent or overdue invoice
func (i *Invoice) MarkPaid(at time.Time) error {
	if i.Status != InvoiceStatusSent && i.Status != InvoiceStatusOverdue {
		return shared.ErrInvalidState.WithMessage("only sent or overdue invoices can be paid")
	}
	i.Status = InvoiceStatusPaid
	i.PaidAt = &at
	i.Touch()
	return nil
}

// Cancel voids a draft or sent invoice
func (i *Invoice) Cancel() error {
	if i.Status != InvoiceStatusDraft && i.Status != InvoiceStatusSent {
		return shared.ErrInvalidState.WithMessage("only draft or sent invoices can be cancelled")
	}
	i.Status = InvoiceStatusCancelled
	i.Touch()
	return nil
}

// IsPastDue reports whether a sent invoice has passed its due date
func (i *Invoice) IsPastDue(now time.Time) bool {
	return i.Status == InvoiceStatusSent && i.DueDate != nil && i.DueDate.Before(now)
}
