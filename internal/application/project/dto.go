package project

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectRequest is the body for creating or replacing a project
type ProjectRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=4000"`
	Status      string          `json:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
	Priority    string          `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Progress    int             `json:"progress" binding:"min=0,max=100"`
	Budget      decimal.Decimal `json:"budget" binding:"nonneg"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	ManagerID   *uuid.UUID      `json:"manager_id"`
}

func (r ProjectRequest) details() project.ProjectDetails {
	return project.ProjectDetails{
		Name:        r.Name,
		Description: r.Description,
		Status:      project.Status(r.Status),
		Priority:    project.Priority(r.Priority),
		Progress:    r.Progress,
		Budget:      r.Budget,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ManagerID:   r.ManagerID,
	}
}

// ProjectListFilter represents filter options for the project list
type ProjectListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
	Priority  string     `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	ManagerID string     `form:"manager_id" binding:"omitempty,uuid"`
	FromDate  *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	Progress    int             `json:"progress"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	ManagerID   *uuid.UUID      `json:"manager_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProjectResponse converts a Project to ProjectResponse
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		Progress:    p.Progress,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		ManagerID:   p.ManagerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of Project to ProjectResponse
func ToProjectResponses(projects []project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}

// TaskRequest is the body for creating or replacing a task
type TaskRequest struct {
	ProjectID   uuid.UUID  `json:"project_id" binding:"required"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=4000"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo in_progress review done cancelled"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

func (r TaskRequest) details() project.TaskDetails {
	return project.TaskDetails{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      project.TaskStatus(r.Status),
		Priority:    project.Priority(r.Priority),
		AssigneeID:  r.AssigneeID,
		DueDate:     r.DueDate,
	}
}

// TaskListFilter represents filter options for the task list
type TaskListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=todo in_progress review done cancelled"`
	Priority   string     `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	ProjectID  string     `form:"project_id" binding:"omitempty,uuid"`
	AssigneeID string     `form:"assignee_id" binding:"omitempty,uuid"`
	Overdue    bool       `form:"overdue"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToTaskResponse converts a Task to TaskResponse, evaluating overdue at now
func ToTaskResponse(t *project.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		Overdue:     t.IsOverdue(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of Task to TaskResponse
func ToTaskResponses(tasks []project.Task, now time.Time) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = ToTaskResponse(&tasks[i], now)
	}
	return responses
}
