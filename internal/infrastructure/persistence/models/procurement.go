package models

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcurementRequestModel is the persistence model for the procurement_requests table
type ProcurementRequestModel struct {
	BaseModel
	RequestNumber   string             `gorm:"type:varchar(30);not null;uniqueIndex"`
	Title           string             `gorm:"type:varchar(200);not null"`
	Description     string             `gorm:"type:text"`
	Department      string             `gorm:"type:varchar(100);index"`
	Vendor          string             `gorm:"type:varchar(200)"`
	EstimatedAmount decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	Status          procurement.Status `gorm:"type:varchar(30);not null;default:'draft';index"`
	RequestedBy     *uuid.UUID         `gorm:"type:uuid;index"`
	ApprovedBy      *uuid.UUID         `gorm:"type:uuid"`
	DecidedAt       *time.Time
	DecisionNote    string     `gorm:"type:varchar(500)"`
	NeededBy        *time.Time `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (ProcurementRequestModel) TableName() string {
	return "procurement_requests"
}

// ToDomain converts the persistence model to a domain Request
func (m *ProcurementRequestModel) ToDomain() *procurement.Request {
	return &procurement.Request{
		BaseEntity:      m.BaseModel.ToDomain(),
		RequestNumber:   m.RequestNumber,
		Title:           m.Title,
		Description:     m.Description,
		Department:      m.Department,
		Vendor:          m.Vendor,
		EstimatedAmount: m.EstimatedAmount,
		Status:          m.Status,
		RequestedBy:     m.RequestedBy,
		ApprovedBy:      m.ApprovedBy,
		DecidedAt:       m.DecidedAt,
		DecisionNote:    m.DecisionNote,
		NeededBy:        m.NeededBy,
	}
}

// ProcurementRequestModelFromDomain creates a persistence model from a domain Request
func ProcurementRequestModelFromDomain(r *procurement.Request) *ProcurementRequestModel {
	m := &ProcurementRequestModel{
		RequestNumber:   r.RequestNumber,
		Title:           r.Title,
		Description:     r.Description,
		Department:      r.Department,
		Vendor:          r.Vendor,
		EstimatedAmount: r.EstimatedAmount,
		Status:          r.Status,
		RequestedBy:     r.RequestedBy,
		ApprovedBy:      r.ApprovedBy,
		DecidedAt:       r.DecidedAt,
		DecisionNote:    r.DecisionNote,
		NeededBy:        r.NeededBy,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
