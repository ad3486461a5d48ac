package hr

import (
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the employment state
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusInactive   EmployeeStatus = "inactive"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// IsValid checks if the status is a known EmployeeStatus
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusTerminated:
		return true
	}
	return false
}

// Employee is a person on the payroll. Salary is optional.
type Employee struct {
	shared.BaseEntity
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Department   string
	Position     string
	Status       EmployeeStatus
	Salary       *decimal.Decimal
	HireDate     time.Time
}

// FullName joins first and last name
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// IsActive reports whether the employee counts toward headcount
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// SalaryOrZero returns the salary, treating a missing value as zero
func (e *Employee) SalaryOrZero() decimal.Decimal {
	if e.Salary == nil {
		return decimal.Zero
	}
	return *e.Salary
}

// EmployeeDetails carries the editable employee fields
type EmployeeDetails struct {
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Department   string
	Position     string
	Salary       *decimal.Decimal
	HireDate     time.Time
}

func (d EmployeeDetails) validate() error {
	if err := shared.ValidateRequired("first_name", d.FirstName); err != nil {
		return err
	}
	if err := shared.ValidateRequired("email", d.Email); err != nil {
		return err
	}
	if err := shared.ValidateRequired("department", d.Department); err != nil {
		return err
	}
	if d.Salary != nil {
		return shared.ValidateAmount("salary", *d.Salary)
	}
	return nil
}

// NewEmployee creates an active employee
func NewEmployee(d EmployeeDetails) (*Employee, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	e := &Employee{BaseEntity: shared.NewBaseEntity(), Status: EmployeeStatusActive}
	e.apply(d)
	return e, nil
}

// Update replaces the editable fields
func (e *Employee) Update(d EmployeeDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	e.apply(d)
	e.Touch()
	return nil
}

func (e *Employee) apply(d EmployeeDetails) {
	e.EmployeeCode = d.EmployeeCode
	e.FirstName = d.FirstName
	e.LastName = d.LastName
	e.Email = strings.ToLower(d.Email)
	e.Phone = d.Phone
	e.Department = d.Department
	e.Position = d.Position
	e.Salary = d.Salary
	e.HireDate = d.HireDate
}

// ChangeStatus moves the employee to s. Terminated employees cannot be reactivated.
func (e *Employee) ChangeStatus(s EmployeeStatus) error {
	if !s.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown employee status " + string(s))
	}
	if e.Status == EmployeeStatusTerminated && s != EmployeeStatusTerminated {
		return shared.ErrInvalidState.WithMessage("terminated employees cannot be reactivated")
	}
	e.Status = s
	e.Touch()
	return nil
}
