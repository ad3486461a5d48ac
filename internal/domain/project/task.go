package project

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskStatus represents the state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the status is a known TaskStatus
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

// IsClosed reports whether the task no longer counts as open work
func (s TaskStatus) IsClosed() bool {
	return s == TaskStatusDone || s == TaskStatusCancelled
}

// Task is a unit of work owned by a project
type Task struct {
	shared.BaseEntity
	ProjectID   uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
	CompletedAt *time.Time
}

// TaskDetails carries the editable task fields
type TaskDetails struct {
	ProjectID   uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
}

func (d *TaskDetails) validate() error {
	if d.ProjectID == uuid.Nil {
		return shared.ErrInvalidInput.WithMessage("project_id is required")
	}
	if err := shared.ValidateRequired("title", d.Title); err != nil {
		return err
	}
	if d.Status == "" {
		d.Status = TaskStatusTodo
	}
	if !d.Status.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown task status " + string(d.Status))
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !d.Priority.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown priority " + string(d.Priority))
	}
	return nil
}

// NewTask creates a task under a project
func NewTask(d TaskDetails) (*Task, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	t := &Task{BaseEntity: shared.NewBaseEntity()}
	t.apply(d)
	return t, nil
}

// Update replaces the editable fields
func (t *Task) Update(d TaskDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	t.apply(d)
	t.Touch()
	return nil
}

func (t *Task) apply(d TaskDetails) {
	wasDone := t.Status == TaskStatusDone
	t.ProjectID = d.ProjectID
	t.Title = d.Title
	t.Description = d.Description
	t.Status = d.Status
	t.Priority = d.Priority
	t.AssigneeID = d.AssigneeID
	t.DueDate = d.DueDate

	switch {
	case t.Status == TaskStatusDone && !wasDone:
		now := time.Now()
		t.CompletedAt = &now
	case t.Status != TaskStatusDone:
		t.CompletedAt = nil
	}
}

// IsOverdue reports whether the task is past due and still open
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Status.IsClosed()
}
