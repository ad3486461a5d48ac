package hr

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest represents a request to create an employee
type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code" binding:"omitempty,max=50"`
	FirstName    string           `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string           `json:"last_name" binding:"max=100"`
	Email        string           `json:"email" binding:"required,email"`
	Phone        string           `json:"phone" binding:"max=50"`
	Department   string           `json:"department" binding:"required,max=100"`
	Position     string           `json:"position" binding:"max=100"`
	Salary       *decimal.Decimal `json:"salary" binding:"omitempty,nonneg"`
	HireDate     time.Time        `json:"hire_date" binding:"required"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code" binding:"omitempty,max=50"`
	FirstName    string           `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string           `json:"last_name" binding:"max=100"`
	Email        string           `json:"email" binding:"required,email"`
	Phone        string           `json:"phone" binding:"max=50"`
	Department   string           `json:"department" binding:"required,max=100"`
	Position     string           `json:"position" binding:"max=100"`
	Salary       *decimal.Decimal `json:"salary" binding:"omitempty,nonneg"`
	HireDate     time.Time        `json:"hire_date" binding:"required"`
	Status       string           `json:"status" binding:"omitempty,oneof=active inactive terminated"`
}

// EmployeeListFilter represents filter options for the employee list
type EmployeeListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive terminated"`
	Department string     `form:"department"`
	Position   string     `form:"position"`
	HiredFrom  *time.Time `form:"hired_from" time_format:"2006-01-02"`
	HiredTo    *time.Time `form:"hired_to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID           uuid.UUID        `json:"id"`
	EmployeeCode string           `json:"employee_code,omitempty"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone,omitempty"`
	Department   string           `json:"department"`
	Position     string           `json:"position,omitempty"`
	Status       string           `json:"status"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	HireDate     time.Time        `json:"hire_date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToEmployeeResponse converts an Employee to EmployeeResponse
func ToEmployeeResponse(e *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Position:     e.Position,
		Status:       string(e.Status),
		Salary:       e.Salary,
		HireDate:     e.HireDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of Employee to EmployeeResponse
func ToEmployeeResponses(employees []hr.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}
