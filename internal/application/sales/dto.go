package sales

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeadRequest is the body for creating or replacing a lead
type LeadRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	Company        string          `json:"company" binding:"max=200"`
	Email          string          `json:"email" binding:"omitempty,email,max=200"`
	Phone          string          `json:"phone" binding:"max=50"`
	Source         string          `json:"source" binding:"max=100"`
	Status         string          `json:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	EstimatedValue decimal.Decimal `json:"estimated_value" binding:"nonneg"`
	OwnerID        *uuid.UUID      `json:"owner_id"`
	Notes          string          `json:"notes" binding:"max=4000"`
}

func (r LeadRequest) details() sales.LeadDetails {
	return sales.LeadDetails{
		Name:           r.Name,
		Company:        r.Company,
		Email:          r.Email,
		Phone:          r.Phone,
		Source:         r.Source,
		Status:         sales.LeadStatus(r.Status),
		EstimatedValue: r.EstimatedValue,
		OwnerID:        r.OwnerID,
		Notes:          r.Notes,
	}
}

// LeadListFilter represents filter options for the lead list
type LeadListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	Source   string     `form:"source"`
	OwnerID  string     `form:"owner_id" binding:"omitempty,uuid"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// LeadResponse represents a lead in API responses
type LeadResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Company        string          `json:"company,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Source         string          `json:"source,omitempty"`
	Status         string          `json:"status"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	OwnerID        *uuid.UUID      `json:"owner_id,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToLeadResponse converts a Lead to LeadResponse
func ToLeadResponse(l *sales.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		Company:        l.Company,
		Email:          l.Email,
		Phone:          l.Phone,
		Source:         l.Source,
		Status:         string(l.Status),
		EstimatedValue: l.EstimatedValue,
		OwnerID:        l.OwnerID,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ToLeadResponses converts a slice of Lead to LeadResponse
func ToLeadResponses(leads []sales.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = ToLeadResponse(&leads[i])
	}
	return responses
}

// ConvertLeadRequest opens an opportunity from a lead
type ConvertLeadRequest struct {
	Name          string          `json:"name" binding:"max=200"`
	Value         decimal.Decimal `json:"value" binding:"nonneg"`
	Probability   int             `json:"probability" binding:"min=0,max=100"`
	ExpectedClose *time.Time      `json:"expected_close"`
}

// OpportunityRequest is the body for creating or replacing an opportunity
type OpportunityRequest struct {
	Name          string          `json:"name" binding:"required,max=200"`
	LeadID        *uuid.UUID      `json:"lead_id"`
	AccountName   string          `json:"account_name" binding:"max=200"`
	Stage         string          `json:"stage" binding:"omitempty,oneof=prospecting proposal negotiation won lost"`
	Value         decimal.Decimal `json:"value" binding:"nonneg"`
	Probability   int             `json:"probability" binding:"min=0,max=100"`
	ExpectedClose *time.Time      `json:"expected_close"`
	OwnerID       *uuid.UUID      `json:"owner_id"`
}

func (r OpportunityRequest) details() sales.OpportunityDetails {
	return sales.OpportunityDetails{
		Name:          r.Name,
		LeadID:        r.LeadID,
		AccountName:   r.AccountName,
		Stage:         sales.Stage(r.Stage),
		Value:         r.Value,
		Probability:   r.Probability,
		ExpectedClose: r.ExpectedClose,
		OwnerID:       r.OwnerID,
	}
}

// OpportunityListFilter represents filter options for the opportunity list
type OpportunityListFilter struct {
	Search   string     `form:"search"`
	Stage    string     `form:"stage" binding:"omitempty,oneof=prospecting proposal negotiation won lost"`
	LeadID   string     `form:"lead_id" binding:"omitempty,uuid"`
	OwnerID  string     `form:"owner_id" binding:"omitempty,uuid"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OpportunityResponse represents an opportunity in API responses
type OpportunityResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	LeadID        *uuid.UUID      `json:"lead_id,omitempty"`
	AccountName   string          `json:"account_name,omitempty"`
	Stage         string          `json:"stage"`
	Value         decimal.Decimal `json:"value"`
	Probability   int             `json:"probability"`
	WeightedValue decimal.Decimal `json:"weighted_value"`
	ExpectedClose *time.Time      `json:"expected_close,omitempty"`
	OwnerID       *uuid.UUID      `json:"owner_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToOpportunityResponse converts an Opportunity to OpportunityResponse
func ToOpportunityResponse(o *sales.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:            o.ID,
		Name:          o.Name,
		LeadID:        o.LeadID,
		AccountName:   o.AccountName,
		Stage:         string(o.Stage),
		Value:         o.Value,
		Probability:   o.Probability,
		WeightedValue: o.WeightedValue(),
		ExpectedClose: o.ExpectedClose,
		OwnerID:       o.OwnerID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToOpportunityResponses converts a slice of Opportunity to OpportunityResponse
func ToOpportunityResponses(opportunities []sales.Opportunity) []OpportunityResponse {
	responses := make([]OpportunityResponse, len(opportunities))
	for i := range opportunities {
		responses[i] = ToOpportunityResponse(&opportunities[i])
	}
	return responses
}
