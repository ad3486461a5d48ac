package hr

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeService provides employee record operations
type EmployeeService struct {
	repo hr.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repo hr.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create creates a new active employee. Emails are unique.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists.WithMessage("an employee with this email already exists")
	}

	employee, err := hr.NewEmployee(hr.EmployeeDetails{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// GetByID returns an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// List returns one page of employees
func (s *EmployeeService) List(ctx context.Context, filter EmployeeListFilter) ([]EmployeeResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		From:     filter.HiredFrom,
		To:       filter.HiredTo,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Department != "" {
		domainFilter.Filters["department"] = filter.Department
	}
	if filter.Position != "" {
		domainFilter.Filters["position"] = filter.Position
	}

	employees, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToEmployeeResponses(employees), total, nil
}

// Update replaces the editable fields and optionally changes the status
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists.WithMessage("an employee with this email already exists")
	}

	if err := employee.Update(hr.EmployeeDetails{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
	}); err != nil {
		return nil, err
	}
	if req.Status != "" && hr.EmployeeStatus(req.Status) != employee.Status {
		if err := employee.ChangeStatus(hr.EmployeeStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Stats summarises every employee record
func (s *EmployeeService) Stats(ctx context.Context) (report.EmployeeStats, error) {
	employees, err := s.repo.ListAll(ctx)
	if err != nil {
		return report.EmployeeStats{}, err
	}
	return report.SummarizeEmployees(employees), nil
}
