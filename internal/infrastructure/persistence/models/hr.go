package models

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the employees table.
// Salary is nullable: a missing salary is not the same as zero.
type EmployeeModel struct {
	BaseModel
	EmployeeCode string            `gorm:"type:varchar(30);not null;uniqueIndex"`
	FirstName    string            `gorm:"type:varchar(100);not null"`
	LastName     string            `gorm:"type:varchar(100);not null"`
	Email        string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone        string            `gorm:"type:varchar(50)"`
	Department   string            `gorm:"type:varchar(100);index"`
	Position     string            `gorm:"type:varchar(100)"`
	Status       hr.EmployeeStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Salary       *decimal.Decimal  `gorm:"type:decimal(18,2)"`
	HireDate     time.Time         `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee
func (m *EmployeeModel) ToDomain() *hr.Employee {
	return &hr.Employee{
		BaseEntity:   m.BaseModel.ToDomain(),
		EmployeeCode: m.EmployeeCode,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		Department:   m.Department,
		Position:     m.Position,
		Status:       m.Status,
		Salary:       m.Salary,
		HireDate:     m.HireDate,
	}
}

// EmployeeModelFromDomain creates a persistence model from a domain Employee
func EmployeeModelFromDomain(e *hr.Employee) *EmployeeModel {
	m := &EmployeeModel{
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Position:     e.Position,
		Status:       e.Status,
		Salary:       e.Salary,
		HireDate:     e.HireDate,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
