package shared

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filter represents query filter options shared by every record store
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
	From     *time.Time
	To       *time.Time
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}

// Normalize fills zero paging fields with defaults and caps the page size
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	if f.Filters == nil {
		f.Filters = make(map[string]any)
	}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// ValidateAmount rejects negative money values
func ValidateAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return ErrInvalidInput.WithMessage(field + " cannot be negative")
	}
	return nil
}

// ValidatePercent rejects values outside 0..100
func ValidatePercent(field string, v int) error {
	if v < 0 || v > 100 {
		return ErrInvalidInput.WithMessage(field + " must be between 0 and 100")
	}
	return nil
}

// ValidateRequired rejects blank strings
func ValidateRequired(field, v string) error {
	if v == "" {
		return ErrInvalidInput.WithMessage(field + " is required")
	}
	return nil
}
