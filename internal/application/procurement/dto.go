package procurement

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestBody is the body for creating or editing a purchase request
type RequestBody struct {
	Title           string          `json:"title" binding:"required,max=200"`
	Description     string          `json:"description" binding:"max=4000"`
	Department      string          `json:"department" binding:"required,max=100"`
	Vendor          string          `json:"vendor" binding:"max=200"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount" binding:"nonneg"`
	NeededBy        *time.Time      `json:"needed_by"`
	RequestedBy     *uuid.UUID      `json:"-"`
}

func (b RequestBody) details() procurement.RequestDetails {
	return procurement.RequestDetails{
		Title:           b.Title,
		Description:     b.Description,
		Department:      b.Department,
		Vendor:          b.Vendor,
		EstimatedAmount: b.EstimatedAmount,
		NeededBy:        b.NeededBy,
	}
}

// DecisionRequest carries an optional note for approve and reject
type DecisionRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

// RequestListFilter represents filter options for the purchase request list
type RequestListFilter struct {
	Search      string     `form:"search"`
	Status      string     `form:"status" binding:"omitempty,oneof=draft pending_approval approved rejected ordered"`
	Department  string     `form:"department"`
	RequestedBy string     `form:"requested_by" binding:"omitempty,uuid"`
	FromDate    *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate      *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// RequestResponse represents a purchase request in API responses
type RequestResponse struct {
	ID              uuid.UUID       `json:"id"`
	RequestNumber   string          `json:"request_number"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Department      string          `json:"department"`
	Vendor          string          `json:"vendor,omitempty"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
	Status          string          `json:"status"`
	RequestedBy     *uuid.UUID      `json:"requested_by,omitempty"`
	ApprovedBy      *uuid.UUID      `json:"approved_by,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	DecisionNote    string          `json:"decision_note,omitempty"`
	NeededBy        *time.Time      `json:"needed_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToRequestResponse converts a Request to RequestResponse
func ToRequestResponse(r *procurement.Request) RequestResponse {
	return RequestResponse{
		ID:              r.ID,
		RequestNumber:   r.RequestNumber,
		Title:           r.Title,
		Description:     r.Description,
		Department:      r.Department,
		Vendor:          r.Vendor,
		EstimatedAmount: r.EstimatedAmount,
		Status:          string(r.Status),
		RequestedBy:     r.RequestedBy,
		ApprovedBy:      r.ApprovedBy,
		DecidedAt:       r.DecidedAt,
		DecisionNote:    r.DecisionNote,
		NeededBy:        r.NeededBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToRequestResponses converts a slice of Request to RequestResponse
func ToRequestResponses(requests []procurement.Request) []RequestResponse {
	responses := make([]RequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToRequestResponse(&requests[i])
	}
	return responses
}
