package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock implementation of project.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockTaskRepository is a mock implementation of project.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Task, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Task), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]project.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Task), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, t *project.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newService() (*ProjectService, *MockProjectRepository, *MockTaskRepository) {
	projects := new(MockProjectRepository)
	tasks := new(MockTaskRepository)
	svc := NewProjectService(projects, tasks)
	svc.now = func() time.Time { return now }
	return svc, projects, tasks
}

func TestProjectService_CreateProjectDefaults(t *testing.T) {
	svc, projects, _ := newService()
	projects.On("Save", mock.Anything, mock.AnythingOfType("*project.Project")).Return(nil)

	resp, err := svc.CreateProject(context.Background(), ProjectRequest{Name: "Migration", Budget: decimal.NewFromInt(5000)})

	require.NoError(t, err)
	assert.Equal(t, "planning", resp.Status)
	assert.Equal(t, "medium", resp.Priority)
	projects.AssertExpectations(t)
}

func TestProjectService_CreateProjectValidation(t *testing.T) {
	svc, projects, _ := newService()
	start := now
	end := now.AddDate(0, 0, -1)

	tests := []struct {
		name string
		req  ProjectRequest
	}{
		{"missing name", ProjectRequest{}},
		{"progress above 100", ProjectRequest{Name: "X", Progress: 120}},
		{"negative budget", ProjectRequest{Name: "X", Budget: decimal.NewFromInt(-1)}},
		{"end before start", ProjectRequest{Name: "X", StartDate: &start, EndDate: &end}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(context.Background(), tt.req)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
	projects.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProjectService_CompletedProjectIsFullyProgressed(t *testing.T) {
	svc, projects, _ := newService()
	p, err := project.NewProject(project.ProjectDetails{Name: "Audit"})
	require.NoError(t, err)

	projects.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	projects.On("Save", mock.Anything, p).Return(nil)

	resp, err := svc.UpdateProject(context.Background(), p.ID, ProjectRequest{Name: "Audit", Status: "completed", Progress: 40})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Progress)
}

func TestProjectService_CreateTaskRequiresProject(t *testing.T) {
	svc, projects, tasks := newService()
	missing := uuid.New()
	projects.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateTask(context.Background(), TaskRequest{ProjectID: missing, Title: "Write docs"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	tasks.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProjectService_CreateTaskOverdueFlag(t *testing.T) {
	svc, projects, tasks := newService()
	p, _ := project.NewProject(project.ProjectDetails{Name: "Audit"})
	due := now.AddDate(0, 0, -2)

	projects.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	tasks.On("Save", mock.Anything, mock.AnythingOfType("*project.Task")).Return(nil)

	resp, err := svc.CreateTask(context.Background(), TaskRequest{ProjectID: p.ID, Title: "Collect invoices", DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, "todo", resp.Status)
	assert.True(t, resp.Overdue)
}

func TestProjectService_UpdateTaskDoneSetsCompletedAt(t *testing.T) {
	svc, _, tasks := newService()
	task, err := project.NewTask(project.TaskDetails{ProjectID: uuid.New(), Title: "Review"})
	require.NoError(t, err)

	tasks.On("FindByID", mock.Anything, task.ID).Return(task, nil)
	tasks.On("Save", mock.Anything, task).Return(nil)

	resp, err := svc.UpdateTask(context.Background(), task.ID, TaskRequest{ProjectID: task.ProjectID, Title: "Review", Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Status)
	assert.NotNil(t, resp.CompletedAt)
	assert.False(t, resp.Overdue)
}

func TestProjectService_ListTasksMapsFilter(t *testing.T) {
	svc, _, tasks := newService()
	projectID := uuid.New()

	tasks.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["project_id"] == projectID.String() && f.Filters["overdue"] == true
	})).Return([]project.Task{}, int64(0), nil)

	items, _, err := svc.ListTasks(context.Background(), TaskListFilter{ProjectID: projectID.String(), Overdue: true})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProjectService_Stats(t *testing.T) {
	svc, projects, tasks := newService()

	a, _ := project.NewProject(project.ProjectDetails{Name: "A", Progress: 50, Budget: decimal.NewFromInt(1000)})
	b, _ := project.NewProject(project.ProjectDetails{Name: "B", Status: project.StatusCompleted, Budget: decimal.NewFromInt(500)})
	due := now.AddDate(0, 0, -1)
	late, _ := project.NewTask(project.TaskDetails{ProjectID: a.ID, Title: "Late", DueDate: &due})
	done, _ := project.NewTask(project.TaskDetails{ProjectID: a.ID, Title: "Done", Status: project.TaskStatusDone, DueDate: &due})

	projects.On("ListAll", mock.Anything).Return([]project.Project{*a, *b}, nil)
	tasks.On("ListAll", mock.Anything).Return([]project.Task{*late, *done}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 1, stats.OverdueTasks)
	assert.True(t, decimal.NewFromInt(75).Equal(stats.AverageCompletion))
	assert.True(t, decimal.NewFromInt(1500).Equal(stats.TotalBudget))
}

func TestProjectService_StatsTaskError(t *testing.T) {
	svc, projects, tasks := newService()
	projects.On("ListAll", mock.Anything).Return([]project.Project{}, nil)
	tasks.On("ListAll", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.Stats(context.Background())
	assert.ErrorContains(t, err, "list tasks")
}
