package project

import (
	"context"
	"fmt"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectService provides project and task operations
type ProjectService struct {
	projects project.ProjectRepository
	tasks    project.TaskRepository
	now      func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects project.ProjectRepository, tasks project.TaskRepository) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, now: time.Now}
}

// ===================== Projects =====================

// CreateProject creates a project
func (s *ProjectService) CreateProject(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	p, err := project.NewProject(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProjectResponse(p)
	return &resp, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProjectResponse(p)
	return &resp, nil
}

// ListProjects returns one page of projects
func (s *ProjectService) ListProjects(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		From:     filter.FromDate,
		To:       filter.ToDate,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Priority != "" {
		domainFilter.Filters["priority"] = filter.Priority
	}
	if filter.ManagerID != "" {
		domainFilter.Filters["manager_id"] = filter.ManagerID
	}

	projects, total, err := s.projects.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToProjectResponses(projects), total, nil
}

// UpdateProject replaces a project's editable fields
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, req ProjectRequest) (*ProjectResponse, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProjectResponse(p)
	return &resp, nil
}

// DeleteProject removes a project and its tasks
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.projects.Delete(ctx, id)
}

// ===================== Tasks =====================

// CreateTask creates a task under an existing project
func (s *ProjectService) CreateTask(ctx context.Context, req TaskRequest) (*TaskResponse, error) {
	if err := s.requireProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	t, err := project.NewTask(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t, s.now())
	return &resp, nil
}

// GetTask returns a task by ID
func (s *ProjectService) GetTask(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t, s.now())
	return &resp, nil
}

// ListTasks returns one page of tasks
func (s *ProjectService) ListTasks(ctx context.Context, filter TaskListFilter) ([]TaskResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Priority != "" {
		domainFilter.Filters["priority"] = filter.Priority
	}
	if filter.ProjectID != "" {
		domainFilter.Filters["project_id"] = filter.ProjectID
	}
	if filter.AssigneeID != "" {
		domainFilter.Filters["assignee_id"] = filter.AssigneeID
	}
	if filter.Overdue {
		domainFilter.Filters["overdue"] = true
	}

	tasks, total, err := s.tasks.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToTaskResponses(tasks, s.now()), total, nil
}

// UpdateTask replaces a task's editable fields. Moving a task to another
// project requires that project to exist.
func (s *ProjectService) UpdateTask(ctx context.Context, id uuid.UUID, req TaskRequest) (*TaskResponse, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ProjectID != t.ProjectID {
		if err := s.requireProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
	}
	if err := t.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t, s.now())
	return &resp, nil
}

// DeleteTask removes a task
func (s *ProjectService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.tasks.Delete(ctx, id)
}

// Stats summarises every project and task
func (s *ProjectService) Stats(ctx context.Context) (report.ProjectStats, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return report.ProjectStats{}, fmt.Errorf("list projects: %w", err)
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return report.ProjectStats{}, fmt.Errorf("list tasks: %w", err)
	}
	return report.SummarizeProjects(projects, tasks, s.now()), nil
}

func (s *ProjectService) requireProject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return shared.ErrInvalidInput.WithMessage("project_id is required")
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}
	return nil
}
