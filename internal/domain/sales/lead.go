package sales

import (
	"strings"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeadStatus represents where a lead sits in qualification
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// IsValid checks if the status is known
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a prospective customer
type Lead struct {
	shared.BaseEntity
	Name           string
	Company        string
	Email          string
	Phone          string
	Source         string
	Status         LeadStatus
	EstimatedValue decimal.Decimal
	OwnerID        *uuid.UUID
	Notes          string
}

// LeadDetails carries the editable lead fields
type LeadDetails struct {
	Name           string
	Company        string
	Email          string
	Phone          string
	Source         string
	Status         LeadStatus
	EstimatedValue decimal.Decimal
	OwnerID        *uuid.UUID
	Notes          string
}

func (d *LeadDetails) validate() error {
	if err := shared.ValidateRequired("name", d.Name); err != nil {
		return err
	}
	if d.Status == "" {
		d.Status = LeadStatusNew
	}
	if !d.Status.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown lead status " + string(d.Status))
	}
	return shared.ValidateAmount("estimated_value", d.EstimatedValue)
}

// NewLead creates a lead
func NewLead(d LeadDetails) (*Lead, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	l := &Lead{BaseEntity: shared.NewBaseEntity()}
	l.apply(d)
	return l, nil
}

// Update replaces the editable fields
func (l *Lead) Update(d LeadDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	l.apply(d)
	l.Touch()
	return nil
}

func (l *Lead) apply(d LeadDetails) {
	l.Name = d.Name
	l.Company = d.Company
	l.Email = strings.ToLower(d.Email)
	l.Phone = d.Phone
	l.Source = d.Source
	l.Status = d.Status
	l.EstimatedValue = d.EstimatedValue
	l.OwnerID = d.OwnerID
	l.Notes = d.Notes
}

// Convert marks an open lead as converted. Converted and lost leads are final.
func (l *Lead) Convert() error {
	if l.Status == LeadStatusConverted || l.Status == LeadStatusLost {
		return shared.ErrInvalidState.WithMessage("lead is already " + string(l.Status))
	}
	l.Status = LeadStatusConverted
	l.Touch()
	return nil
}
