package hr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEmployeeRepository is a mock implementation of hr.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Employee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) ListAll(ctx context.Context) ([]hr.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func validCreateRequest() CreateEmployeeRequest {
	salary := decimal.NewFromInt(5200)
	return CreateEmployeeRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "Grace@Example.com",
		Department: "Engineering",
		Position:   "Architect",
		Salary:     &salary,
		HireDate:   time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)

	repo.On("ExistsByEmail", mock.Anything, "Grace@Example.com", (*uuid.UUID)(nil)).Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*hr.Employee")).Return(nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", resp.Email)
	assert.Equal(t, "Grace Hopper", resp.FullName)
	assert.Equal(t, "active", resp.Status)
	repo.AssertExpectations(t)
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)

	repo.On("ExistsByEmail", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEmployeeService_CreateRejectsNegativeSalary(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)
	repo.On("ExistsByEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	req := validCreateRequest()
	negative := decimal.NewFromInt(-1)
	req.Salary = &negative

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestEmployeeService_UpdateChangesStatus(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)

	employee, err := hr.NewEmployee(hr.EmployeeDetails{FirstName: "Alan", Email: "alan@example.com", Department: "Research"})
	require.NoError(t, err)
	id := employee.ID

	repo.On("FindByID", mock.Anything, id).Return(employee, nil)
	repo.On("ExistsByEmail", mock.Anything, "alan@example.com", &id).Return(false, nil)
	repo.On("Save", mock.Anything, employee).Return(nil)

	resp, err := svc.Update(context.Background(), id, UpdateEmployeeRequest{
		FirstName:  "Alan",
		Email:      "alan@example.com",
		Department: "Research",
		Status:     "inactive",
	})

	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	repo.AssertExpectations(t)
}

func TestEmployeeService_UpdateCannotReactivateTerminated(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)

	employee, err := hr.NewEmployee(hr.EmployeeDetails{FirstName: "Alan", Email: "alan@example.com", Department: "Research"})
	require.NoError(t, err)
	require.NoError(t, employee.ChangeStatus(hr.EmployeeStatusTerminated))

	repo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
	repo.On("ExistsByEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	_, err = svc.Update(context.Background(), employee.ID, UpdateEmployeeRequest{
		FirstName: "Alan", Email: "alan@example.com", Department: "Research", Status: "active",
	})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestEmployeeService_ListMapsFilter(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["department"] == "Sales" &&
			f.Filters["status"] == "active" &&
			f.Search == "ann" &&
			f.From != nil && f.From.Equal(from)
	})).Return([]hr.Employee{}, int64(0), nil)

	items, total, err := svc.List(context.Background(), EmployeeListFilter{
		Search: "ann", Department: "Sales", Status: "active", HiredFrom: &from,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestEmployeeService_Stats(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)

	salary := decimal.NewFromInt(3000)
	a, _ := hr.NewEmployee(hr.EmployeeDetails{FirstName: "A", Email: "a@example.com", Department: "Ops", Salary: &salary})
	b, _ := hr.NewEmployee(hr.EmployeeDetails{FirstName: "B", Email: "b@example.com", Department: "Ops"})
	require.NoError(t, b.ChangeStatus(hr.EmployeeStatusInactive))
	repo.On("ListAll", mock.Anything).Return([]hr.Employee{*a, *b}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, map[string]int{"Ops": 1}, stats.Departments)
	assert.True(t, salary.Equal(stats.AverageSalary))
}

func TestEmployeeService_StatsError(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := NewEmployeeService(repo)
	repo.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
