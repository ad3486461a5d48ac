package models

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeadModel is the persistence model for the leads table
type LeadModel struct {
	BaseModel
	Name           string           `gorm:"type:varchar(200);not null"`
	Company        string           `gorm:"type:varchar(200)"`
	Email          string           `gorm:"type:varchar(200);index"`
	Phone          string           `gorm:"type:varchar(50)"`
	Source         string           `gorm:"type:varchar(50);index"`
	Status         sales.LeadStatus `gorm:"type:varchar(20);not null;default:'new';index"`
	EstimatedValue decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	OwnerID        *uuid.UUID       `gorm:"type:uuid;index"`
	Notes          string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LeadModel) TableName() string {
	return "leads"
}

// ToDomain converts the persistence model to a domain Lead
func (m *LeadModel) ToDomain() *sales.Lead {
	return &sales.Lead{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Company:        m.Company,
		Email:          m.Email,
		Phone:          m.Phone,
		Source:         m.Source,
		Status:         m.Status,
		EstimatedValue: m.EstimatedValue,
		OwnerID:        m.OwnerID,
		Notes:          m.Notes,
	}
}

// LeadModelFromDomain creates a persistence model from a domain Lead
func LeadModelFromDomain(l *sales.Lead) *LeadModel {
	m := &LeadModel{
		Name:           l.Name,
		Company:        l.Company,
		Email:          l.Email,
		Phone:          l.Phone,
		Source:         l.Source,
		Status:         l.Status,
		EstimatedValue: l.EstimatedValue,
		OwnerID:        l.OwnerID,
		Notes:          l.Notes,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// OpportunityModel is the persistence model for the opportunities table
type OpportunityModel struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null"`
	LeadID        *uuid.UUID      `gorm:"type:uuid;index"`
	AccountName   string          `gorm:"type:varchar(200)"`
	Stage         sales.Stage     `gorm:"type:varchar(20);not null;default:'prospecting';index"`
	Value         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Probability   int             `gorm:"not null;default:0"`
	ExpectedClose *time.Time      `gorm:"type:date"`
	OwnerID       *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (OpportunityModel) TableName() string {
	return "opportunities"
}

// ToDomain converts the persistence model to a domain Opportunity
func (m *OpportunityModel) ToDomain() *sales.Opportunity {
	return &sales.Opportunity{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		LeadID:        m.LeadID,
		AccountName:   m.AccountName,
		Stage:         m.Stage,
		Value:         m.Value,
		Probability:   m.Probability,
		ExpectedClose: m.ExpectedClose,
		OwnerID:       m.OwnerID,
	}
}

// OpportunityModelFromDomain creates a persistence model from a domain Opportunity
func OpportunityModelFromDomain(o *sales.Opportunity) *OpportunityModel {
	m := &OpportunityModel{
		Name:          o.Name,
		LeadID:        o.LeadID,
		AccountName:   o.AccountName,
		Stage:         o.Stage,
		Value:         o.Value,
		Probability:   o.Probability,
		ExpectedClose: o.ExpectedClose,
		OwnerID:       o.OwnerID,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}
