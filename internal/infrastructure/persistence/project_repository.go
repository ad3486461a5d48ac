package persistence

import (
	"context"
	"strconv"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var projectListSpec = listSpec{
	searchColumns: []string{"name", "description"},
	columns: map[string]string{
		"status":     "status",
		"priority":   "priority",
		"manager_id": "manager_id",
	},
	dateColumn:  "start_date",
	sortFields:  ProjectSortFields,
	defaultSort: "created_at",
}

var taskListSpec = listSpec{
	searchColumns: []string{"title", "description"},
	columns: map[string]string{
		"status":      "status",
		"priority":    "priority",
		"project_id":  "project_id",
		"assignee_id": "assignee_id",
	},
	scopes: map[string]func(db *gorm.DB, value any) *gorm.DB{
		"overdue": overdueTaskScope,
	},
	dateColumn:  "due_date",
	sortFields:  TaskSortFields,
	defaultSort: "created_at",
}

// overdueTaskScope keeps open tasks whose due date has passed
func overdueTaskScope(db *gorm.DB, value any) *gorm.DB {
	if !truthy(value) {
		return db
	}
	return db.Where("due_date IS NOT NULL AND due_date < ? AND status NOT IN ?",
		time.Now(), []string{string(project.TaskStatusDone), string(project.TaskStatusCancelled)})
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
	return false
}

// GormProjectRepository implements project.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	m, err := findByID[models.ProjectModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, int64, error) {
	rows, total, err := findPage[models.ProjectModel](ctx, r.db, projectListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.ProjectModel).ToDomain), total, nil
}

// ListAll returns every project
func (r *GormProjectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	rows, err := findAll[models.ProjectModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.ProjectModel).ToDomain), nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(models.ProjectModelFromDomain(p)).Error
}

// Delete removes a project and its tasks in one transaction
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.TaskModel{}).Error; err != nil {
			return err
		}
		return deleteByID[models.ProjectModel](ctx, tx, id)
	})
}

var _ project.ProjectRepository = (*GormProjectRepository)(nil)

// GormTaskRepository implements project.TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by its ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Task, error) {
	m, err := findByID[models.TaskModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of tasks matching the filter
func (r *GormTaskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Task, int64, error) {
	rows, total, err := findPage[models.TaskModel](ctx, r.db, taskListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.TaskModel).ToDomain), total, nil
}

// ListAll returns every task
func (r *GormTaskRepository) ListAll(ctx context.Context) ([]project.Task, error) {
	rows, err := findAll[models.TaskModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return toDomain(rows, (*models.TaskModel).ToDomain), nil
}

// Save creates or updates a task
func (r *GormTaskRepository) Save(ctx context.Context, t *project.Task) error {
	return r.db.WithContext(ctx).Save(models.TaskModelFromDomain(t)).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.TaskModel](ctx, r.db, id)
}

var _ project.TaskRepository = (*GormTaskRepository)(nil)
