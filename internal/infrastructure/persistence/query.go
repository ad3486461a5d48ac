package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"gorm.io/gorm"
)

// listSpec describes how a table answers a shared.Filter. Filter keys that
// are not listed in columns or scopes are ignored.
type listSpec struct {
	searchColumns []string
	columns       map[string]string
	scopes        map[string]func(db *gorm.DB, value any) *gorm.DB
	dateColumn    string
	sortFields    map[string]bool
	defaultSort   string
}

// where applies search, equality filters, custom scopes and the date range
func (s listSpec) where(db *gorm.DB, filter shared.Filter) *gorm.DB {
	if term := strings.TrimSpace(filter.Search); term != "" && len(s.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(s.searchColumns))
		args := make([]any, len(s.searchColumns))
		for i, col := range s.searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	for key, value := range filter.Filters {
		if value == nil || value == "" {
			continue
		}
		if col, ok := s.columns[key]; ok {
			db = db.Where(col+" = ?", value)
			continue
		}
		if scope, ok := s.scopes[key]; ok {
			db = scope(db, value)
		}
	}

	if s.dateColumn != "" {
		if filter.From != nil {
			db = db.Where(s.dateColumn+" >= ?", *filter.From)
		}
		if filter.To != nil {
			db = db.Where(s.dateColumn+" <= ?", *filter.To)
		}
	}
	return db
}

// order applies the whitelisted sort plus a stable id tiebreak
func (s listSpec) order(db *gorm.DB, filter shared.Filter) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, s.sortFields, s.defaultSort)
	dir := ValidateSortOrder(filter.OrderDir)
	return db.Order(fmt.Sprintf("%s %s", field, dir)).Order("id ASC")
}

// findPage counts matching rows, then loads the requested page
func findPage[M any](ctx context.Context, db *gorm.DB, spec listSpec, filter shared.Filter) ([]M, int64, error) {
	filter.Normalize()

	// Session makes the filtered query safe to reuse for count and page
	query := spec.where(db.WithContext(ctx).Model(new(M)), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]M, 0, filter.PageSize)
	if total == 0 {
		return rows, 0, nil
	}
	if err := spec.order(query, filter).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// findAll loads every row in creation order
func findAll[M any](ctx context.Context, db *gorm.DB) ([]M, error) {
	rows := make([]M, 0)
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// findByID loads one row or returns shared.ErrNotFound
func findByID[M any](ctx context.Context, db *gorm.DB, id any) (*M, error) {
	var row M
	if err := db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// deleteByID removes one row or returns shared.ErrNotFound
func deleteByID[M any](ctx context.Context, db *gorm.DB, id any) error {
	result := db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// toDomain maps persistence models to domain values
func toDomain[M any, D any](rows []M, convert func(*M) *D) []D {
	out := make([]D, len(rows))
	for i := range rows {
		out[i] = *convert(&rows[i])
	}
	return out
}

// translateUniqueViolation maps duplicate key errors from either driver
// to shared.ErrAlreadyExists.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return shared.ErrAlreadyExists
	}
	return err
}
