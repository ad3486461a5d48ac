package procurement

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the approval state of a purchase request
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusOrdered         Status = "ordered"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusOrdered:
		return true
	}
	return false
}

// Request is an internal request to purchase goods or services.
//
// Lifecycle: draft -> pending_approval -> approved -> ordered, with
// pending_approval -> rejected -> draft for resubmission.
type Request struct {
	shared.BaseEntity
	RequestNumber   string
	Title           string
	Description     string
	Department      string
	Vendor          string
	EstimatedAmount decimal.Decimal
	Status          Status
	RequestedBy     *uuid.UUID
	ApprovedBy      *uuid.UUID
	DecidedAt       *time.Time
	DecisionNote    string
	NeededBy        *time.Time
}

// RequestDetails carries the editable request fields
type RequestDetails struct {
	Title           string
	Description     string
	Department      string
	Vendor          string
	EstimatedAmount decimal.Decimal
	NeededBy        *time.Time
}

func (d RequestDetails) validate() error {
	if err := shared.ValidateRequired("title", d.Title); err != nil {
		return err
	}
	if err := shared.ValidateRequired("department", d.Department); err != nil {
		return err
	}
	return shared.ValidateAmount("estimated_amount", d.EstimatedAmount)
}

// NewRequest creates a draft purchase request
func NewRequest(number string, d RequestDetails, requestedBy *uuid.UUID) (*Request, error) {
	if err := shared.ValidateRequired("request_number", number); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	r := &Request{
		BaseEntity:    shared.NewBaseEntity(),
		RequestNumber: number,
		Status:        StatusDraft,
		RequestedBy:   requestedBy,
	}
	r.apply(d)
	return r, nil
}

// Update edits a draft or rejected request
func (r *Request) Update(d RequestDetails) error {
	if r.Status != StatusDraft && r.Status != StatusRejected {
		return shared.ErrInvalidState.WithMessage("only draft or rejected requests can be edited")
	}
	if err := d.validate(); err != nil {
		return err
	}
	r.apply(d)
	r.Touch()
	return nil
}

func (r *Request) apply(d RequestDetails) {
	r.Title = d.Title
	r.Description = d.Description
	r.Department = d.Department
	r.Vendor = d.Vendor
	r.EstimatedAmount = d.EstimatedAmount
	r.NeededBy = d.NeededBy
}

// Submit sends a draft or rejected request for approval
func (r *Request) Submit() error {
	if r.Status != StatusDraft && r.Status != StatusRejected {
		return shared.ErrInvalidState.WithMessage("only draft or rejected requests can be submitted")
	}
	r.Status = StatusPendingApproval
	r.DecidedAt = nil
	r.DecisionNote = ""
	r.Touch()
	return nil
}

// Approve accepts a pending request
func (r *Request) Approve(approver *uuid.UUID, note string) error {
	return r.decide(StatusApproved, approver, note)
}

// Reject declines a pending request
func (r *Request) Reject(approver *uuid.UUID, note string) error {
	return r.decide(StatusRejected, approver, note)
}

func (r *Request) decide(to Status, approver *uuid.UUID, note string) error {
	if r.Status != StatusPendingApproval {
		return shared.ErrInvalidState.WithMessage("request is not pending approval")
	}
	now := time.Now()
	r.Status = to
	r.ApprovedBy = approver
	r.DecidedAt = &now
	r.DecisionNote = note
	r.Touch()
	return nil
}

// MarkOrdered records that an approved request was turned into an order
func (r *Request) MarkOrdered() error {
	if r.Status != StatusApproved {
		return shared.ErrInvalidState.WithMessage("only approved requests can be ordered")
	}
	r.Status = StatusOrdered
	r.Touch()
	return nil
}
