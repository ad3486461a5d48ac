package hr

import (
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details() EmployeeDetails {
	salary := decimal.NewFromInt(50000)
	return EmployeeDetails{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "Ada@Example.com",
		Department: "Engineering",
		Salary:     &salary,
		HireDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewEmployee(t *testing.T) {
	e, err := NewEmployee(details())
	require.NoError(t, err)
	assert.Equal(t, EmployeeStatusActive, e.Status)
	assert.Equal(t, "ada@example.com", e.Email)
	assert.Equal(t, "Ada Lovelace", e.FullName())

	d := details()
	neg := decimal.NewFromInt(-1)
	d.Salary = &neg
	_, err = NewEmployee(d)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	d = details()
	d.Department = ""
	_, err = NewEmployee(d)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSalaryOrZero(t *testing.T) {
	e := &Employee{}
	assert.True(t, e.SalaryOrZero().IsZero())
}

func TestChangeStatus(t *testing.T) {
	e, err := NewEmployee(details())
	require.NoError(t, err)

	require.NoError(t, e.ChangeStatus(EmployeeStatusInactive))
	require.NoError(t, e.ChangeStatus(EmployeeStatusTerminated))
	assert.ErrorIs(t, e.ChangeStatus(EmployeeStatusActive), shared.ErrInvalidState)
	assert.ErrorIs(t, e.ChangeStatus("retired"), shared.ErrInvalidInput)
}
