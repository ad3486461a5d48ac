package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"asc", "ASC"},
		{" ASC ", "ASC"},
		{"desc", "DESC"},
		{"", "DESC"},
		{"sideways", "DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateSortOrder(tt.in), tt.in)
	}
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "amount", ValidateSortField("amount", InvoiceSortFields, "issue_date"))
	assert.Equal(t, "issue_date", ValidateSortField("", InvoiceSortFields, "issue_date"))
	assert.Equal(t, "issue_date", ValidateSortField("amount desc; --", InvoiceSortFields, "issue_date"))
	assert.Equal(t, "created_at", ValidateSortField("created_at", ExpenseSortFields, "expense_date"))
}
