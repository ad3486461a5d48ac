package finance

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===================== Invoices =====================

// CreateInvoiceRequest represents a request to create a draft invoice
type CreateInvoiceRequest struct {
	Number       string          `json:"number" binding:"required,max=50"`
	CustomerName string          `json:"customer_name" binding:"required,max=200"`
	Amount       decimal.Decimal `json:"amount" binding:"nonneg"`
	IssueDate    time.Time       `json:"issue_date" binding:"required"`
	DueDate      *time.Time      `json:"due_date"`
	Category     string          `json:"category" binding:"max=100"`
	Notes        string          `json:"notes" binding:"max=2000"`
	OwnerID      *uuid.UUID      `json:"-"` // Set from JWT context, not from request body
}

// UpdateInvoiceRequest represents a request to update an invoice
type UpdateInvoiceRequest struct {
	CustomerName string          `json:"customer_name" binding:"required,max=200"`
	Amount       decimal.Decimal `json:"amount" binding:"nonneg"`
	DueDate      *time.Time      `json:"due_date"`
	Category     string          `json:"category" binding:"max=100"`
	Notes        string          `json:"notes" binding:"max=2000"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search       string     `form:"search"`
	Status       string     `form:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	Category     string     `form:"category"`
	CustomerName string     `form:"customer_name"`
	FromDate     *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate       *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    time.Time       `json:"issue_date"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	Category     string          `json:"category,omitempty"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	OwnerID      *uuid.UUID      `json:"owner_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts an Invoice to InvoiceResponse
func ToInvoiceResponse(i *finance.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           i.ID,
		Number:       i.Number,
		CustomerName: i.CustomerName,
		Amount:       i.Amount,
		IssueDate:    i.IssueDate,
		DueDate:      i.DueDate,
		PaidAt:       i.PaidAt,
		Category:     i.Category,
		Status:       string(i.Status),
		Notes:        i.Notes,
		OwnerID:      i.OwnerID,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of Invoice to InvoiceResponse
func ToInvoiceResponses(invoices []finance.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ===================== Expenses =====================

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"nonneg"`
	Date        time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=travel office software marketing utilities salary other"`
	Description string          `json:"description" binding:"max=2000"`
	OwnerID     *uuid.UUID      `json:"-"`
}

// UpdateExpenseRequest represents a request to update a pending expense
type UpdateExpenseRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"nonneg"`
	Date        time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=travel office software marketing utilities salary other"`
	Description string          `json:"description" binding:"max=2000"`
}

// RejectExpenseRequest carries the reason for a rejection
type RejectExpenseRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ExpenseListFilter represents filter options for the expense list
type ExpenseListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Category string     `form:"category"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category"`
	Status          string          `json:"status"`
	Description     string          `json:"description,omitempty"`
	OwnerID         *uuid.UUID      `json:"owner_id,omitempty"`
	ReviewedBy      *uuid.UUID      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts an Expense to ExpenseResponse
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		Title:           e.Title,
		Amount:          e.Amount,
		Date:            e.Date,
		Category:        string(e.Category),
		Status:          string(e.Status),
		Description:     e.Description,
		OwnerID:         e.OwnerID,
		ReviewedBy:      e.ReviewedBy,
		ReviewedAt:      e.ReviewedAt,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of Expense to ExpenseResponse
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
