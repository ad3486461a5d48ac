package project

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository persists projects.
// Recognised filter keys: status, priority, manager_id.
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, int64, error)
	ListAll(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, project *Project) error
	// Delete removes the project together with the tasks it owns
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository persists tasks.
// Recognised filter keys: status, priority, project_id, assignee_id, overdue.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Task, int64, error)
	ListAll(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
