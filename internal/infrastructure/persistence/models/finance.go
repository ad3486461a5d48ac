package models

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the invoices table
type InvoiceModel struct {
	BaseModel
	Number       string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string                `gorm:"type:varchar(200);not null"`
	Amount       decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	IssueDate    time.Time             `gorm:"type:date;not null"`
	DueDate      *time.Time            `gorm:"type:date"`
	PaidAt       *time.Time            `gorm:"index"`
	Category     string                `gorm:"type:varchar(100)"`
	Status       finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Notes        string                `gorm:"type:text"`
	OwnerID      *uuid.UUID            `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseEntity:   m.BaseModel.ToDomain(),
		Number:       m.Number,
		CustomerName: m.CustomerName,
		Amount:       m.Amount,
		IssueDate:    m.IssueDate,
		DueDate:      m.DueDate,
		PaidAt:       m.PaidAt,
		Category:     m.Category,
		Status:       m.Status,
		Notes:        m.Notes,
		OwnerID:      m.OwnerID,
	}
}

// InvoiceModelFromDomain creates a persistence model from a domain Invoice
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		Number:       i.Number,
		CustomerName: i.CustomerName,
		Amount:       i.Amount,
		IssueDate:    i.IssueDate,
		DueDate:      i.DueDate,
		PaidAt:       i.PaidAt,
		Category:     i.Category,
		Status:       i.Status,
		Notes:        i.Notes,
		OwnerID:      i.OwnerID,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

// ExpenseModel is the persistence model for the expenses table
type ExpenseModel struct {
	BaseModel
	Title           string                  `gorm:"type:varchar(200);not null"`
	Amount          decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	Date            time.Time               `gorm:"column:expense_date;type:date;not null;index"`
	Category        finance.ExpenseCategory `gorm:"type:varchar(30);not null;index"`
	Status          finance.ExpenseStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	Description     string                  `gorm:"type:text"`
	OwnerID         *uuid.UUID              `gorm:"type:uuid;index"`
	ReviewedBy      *uuid.UUID              `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:      m.BaseModel.ToDomain(),
		Title:           m.Title,
		Amount:          m.Amount,
		Date:            m.Date,
		Category:        m.Category,
		Status:          m.Status,
		Description:     m.Description,
		OwnerID:         m.OwnerID,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		RejectionReason: m.RejectionReason,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		Title:           e.Title,
		Amount:          e.Amount,
		Date:            e.Date,
		Category:        e.Category,
		Status:          e.Status,
		Description:     e.Description,
		OwnerID:         e.OwnerID,
		ReviewedBy:      e.ReviewedBy,
		ReviewedAt:      e.ReviewedAt,
		RejectionReason: e.RejectionReason,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
