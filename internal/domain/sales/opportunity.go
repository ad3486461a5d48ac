package sales

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stage represents the pipeline stage of an opportunity
type Stage string

const (
	StageProspecting Stage = "prospecting"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// IsValid checks if the stage is known
func (s Stage) IsValid() bool {
	switch s {
	case StageProspecting, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// IsOpen reports whether the opportunity is still in the pipeline
func (s Stage) IsOpen() bool {
	return s != StageWon && s != StageLost
}

// Opportunity is a potential deal, optionally originating from a lead
type Opportunity struct {
	shared.BaseEntity
	Name          string
	LeadID        *uuid.UUID
	AccountName   string
	Stage         Stage
	Value         decimal.Decimal
	Probability   int
	ExpectedClose *time.Time
	OwnerID       *uuid.UUID
}

// OpportunityDetails carries the editable opportunity fields
type OpportunityDetails struct {
	Name          string
	LeadID        *uuid.UUID
	AccountName   string
	Stage         Stage
	Value         decimal.Decimal
	Probability   int
	ExpectedClose *time.Time
	OwnerID       *uuid.UUID
}

func (d *OpportunityDetails) validate() error {
	if err := shared.ValidateRequired("name", d.Name); err != nil {
		return err
	}
	if d.Stage == "" {
		d.Stage = StageProspecting
	}
	if !d.Stage.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown stage " + string(d.Stage))
	}
	if err := shared.ValidateAmount("value", d.Value); err != nil {
		return err
	}
	return shared.ValidatePercent("probability", d.Probability)
}

// NewOpportunity creates an opportunity
func NewOpportunity(d OpportunityDetails) (*Opportunity, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	o := &Opportunity{BaseEntity: shared.NewBaseEntity()}
	o.apply(d)
	return o, nil
}

// Update replaces the editable fields
func (o *Opportunity) Update(d OpportunityDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	o.apply(d)
	o.Touch()
	return nil
}

func (o *Opportunity) apply(d OpportunityDetails) {
	o.Name = d.Name
	o.LeadID = d.LeadID
	o.AccountName = d.AccountName
	o.Stage = d.Stage
	o.Value = d.Value
	o.Probability = d.Probability
	o.ExpectedClose = d.ExpectedClose
	o.OwnerID = d.OwnerID
	switch o.Stage {
	case StageWon:
		o.Probability = 100
	case StageLost:
		o.Probability = 0
	}
}

// WeightedValue is value scaled by win probability
func (o *Opportunity) WeightedValue() decimal.Decimal {
	return o.Value.Mul(decimal.NewFromInt(int64(o.Probability))).Div(decimal.NewFromInt(100))
}
