package finance

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryTravel    ExpenseCategory = "travel"
	ExpenseCategoryOffice    ExpenseCategory = "office"
	ExpenseCategorySoftware  ExpenseCategory = "software"
	ExpenseCategoryMarketing ExpenseCategory = "marketing"
	ExpenseCategoryUtilities ExpenseCategory = "utilities"
	ExpenseCategorySalary    ExpenseCategory = "salary"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryTravel, ExpenseCategoryOffice, ExpenseCategorySoftware,
		ExpenseCategoryMarketing, ExpenseCategoryUtilities, ExpenseCategorySalary, ExpenseCategoryOther:
		return true
	}
	return false
}

// ExpenseStatus represents the approval state of an expense
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// IsValid checks if the status is a valid ExpenseStatus
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}

// Expense is a cost incurred by the business, approved or rejected once
type Expense struct {
	shared.BaseEntity
	Title           string
	Amount          decimal.Decimal
	Date            time.Time
	Category        ExpenseCategory
	Status          ExpenseStatus
	Description     string
	OwnerID         *uuid.UUID
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	RejectionReason string
}

// NewExpense creates a pending expense
func NewExpense(title string, amount decimal.Decimal, date time.Time, category ExpenseCategory) (*Expense, error) {
	if err := shared.ValidateRequired("title", title); err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("unknown expense category " + string(category))
	}

	return &Expense{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Amount:     amount,
		Date:       date,
		Category:   category,
		Status:     ExpenseStatusPending,
	}, nil
}

// Update edits a pending expense
func (e *Expense) Update(title string, amount decimal.Decimal, date time.Time, category ExpenseCategory, description string) error {
	if e.Status != ExpenseStatusPending {
		return shared.ErrInvalidState.WithMessage("only pending expenses can be edited")
	}
	if err := shared.ValidateRequired("title", title); err != nil {
		return err
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return err
	}
	if !category.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown expense category " + string(category))
	}

	e.Title = title
	e.Amount = amount
	e.Date = date
	e.Category = category
	e.Description = description
	e.Touch()
	return nil
}

// Approve moves a pending expense to approved
func (e *Expense) Approve(reviewer *uuid.UUID) error {
	if e.Status != ExpenseStatusPending {
		return shared.ErrInvalidState.WithMessage("only pending expenses can be approved")
	}
	now := time.Now()
	e.Status = ExpenseStatusApproved
	e.ReviewedBy = reviewer
	e.ReviewedAt = &now
	e.Touch()
	return nil
}

// Reject moves a pending expense to rejected
func (e *Expense) Reject(reviewer *uuid.UUID, reason string) error {
	if e.Status != ExpenseStatusPending {
		return shared.ErrInvalidState.WithMessage("only pending expenses can be rejected")
	}
	now := time.Now()
	e.Status = ExpenseStatusRejected
	e.ReviewedBy = reviewer
	e.ReviewedAt = &now
	e.RejectionReason = reason
	e.Touch()
	return nil
}
