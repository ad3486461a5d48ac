package project

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the state of a project
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a known project Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority is shared by projects and tasks
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid checks if the priority is known
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Project groups tasks. Progress is a completion percentage in 0..100.
type Project struct {
	shared.BaseEntity
	Name        string
	Description string
	Status      Status
	Priority    Priority
	Progress    int
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *uuid.UUID
}

// ProjectDetails carries the editable project fields
type ProjectDetails struct {
	Name        string
	Description string
	Status      Status
	Priority    Priority
	Progress    int
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *uuid.UUID
}

func (d *ProjectDetails) validate() error {
	if err := shared.ValidateRequired("name", d.Name); err != nil {
		return err
	}
	if d.Status == "" {
		d.Status = StatusPlanning
	}
	if !d.Status.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown project status " + string(d.Status))
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !d.Priority.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown priority " + string(d.Priority))
	}
	if err := shared.ValidatePercent("progress", d.Progress); err != nil {
		return err
	}
	if err := shared.ValidateAmount("budget", d.Budget); err != nil {
		return err
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return shared.ErrInvalidInput.WithMessage("end_date cannot be before start_date")
	}
	return nil
}

// NewProject creates a project, defaulting to planning status and medium priority
func NewProject(d ProjectDetails) (*Project, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	p := &Project{BaseEntity: shared.NewBaseEntity()}
	p.apply(d)
	return p, nil
}

// Update replaces the editable fields
func (p *Project) Update(d ProjectDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	p.apply(d)
	p.Touch()
	return nil
}

func (p *Project) apply(d ProjectDetails) {
	p.Name = d.Name
	p.Description = d.Description
	p.Status = d.Status
	p.Priority = d.Priority
	p.Progress = d.Progress
	p.Budget = d.Budget
	p.StartDate = d.StartDate
	p.EndDate = d.EndDate
	p.ManagerID = d.ManagerID
	if p.Status == StatusCompleted {
		p.Progress = 100
	}
}
