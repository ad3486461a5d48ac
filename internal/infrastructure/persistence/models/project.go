package models

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for the projects table
type ProjectModel struct {
	BaseModel
	Name        string           `gorm:"type:varchar(200);not null"`
	Description string           `gorm:"type:text"`
	Status      project.Status   `gorm:"type:varchar(20);not null;default:'planning';index"`
	Priority    project.Priority `gorm:"type:varchar(20);not null;default:'medium'"`
	Progress    int              `gorm:"not null;default:0"`
	Budget      decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	StartDate   *time.Time       `gorm:"type:date"`
	EndDate     *time.Time       `gorm:"type:date"`
	ManagerID   *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		Priority:    m.Priority,
		Progress:    m.Progress,
		Budget:      m.Budget,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		ManagerID:   m.ManagerID,
	}
}

// ProjectModelFromDomain creates a persistence model from a domain Project
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		Progress:    p.Progress,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		ManagerID:   p.ManagerID,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// TaskModel is the persistence model for the tasks table
type TaskModel struct {
	BaseModel
	ProjectID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	Title       string             `gorm:"type:varchar(200);not null"`
	Description string             `gorm:"type:text"`
	Status      project.TaskStatus `gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority    project.Priority   `gorm:"type:varchar(20);not null;default:'medium'"`
	AssigneeID  *uuid.UUID         `gorm:"type:uuid;index"`
	DueDate     *time.Time         `gorm:"index"`
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task
func (m *TaskModel) ToDomain() *project.Task {
	return &project.Task{
		BaseEntity:  m.BaseModel.ToDomain(),
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		Priority:    m.Priority,
		AssigneeID:  m.AssigneeID,
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
	}
}

// TaskModelFromDomain creates a persistence model from a domain Task
func TaskModelFromDomain(t *project.Task) *TaskModel {
	m := &TaskModel{
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
