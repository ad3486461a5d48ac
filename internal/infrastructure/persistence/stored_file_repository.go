package persistence

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var storedFileListSpec = listSpec{
	searchColumns: []string{"name"},
	columns: map[string]string{
		"category":    "category",
		"report_type": "report_type",
		"format":      "format",
	},
	dateColumn:  "created_at",
	sortFields:  StoredFileSortFields,
	defaultSort: "created_at",
}

// GormStoredFileRepository implements files.Repository using GORM
type GormStoredFileRepository struct {
	db *gorm.DB
}

// NewGormStoredFileRepository creates a new GormStoredFileRepository
func NewGormStoredFileRepository(db *gorm.DB) *GormStoredFileRepository {
	return &GormStoredFileRepository{db: db}
}

// FindByID finds a stored file entry by its ID
func (r *GormStoredFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*files.StoredFile, error) {
	m, err := findByID[models.StoredFileModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of stored files, newest first by default
func (r *GormStoredFileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]files.StoredFile, int64, error) {
	rows, total, err := findPage[models.StoredFileModel](ctx, r.db, storedFileListSpec, filter)
	if err != nil {
		return nil, 0, err
	}
	return toDomain(rows, (*models.StoredFileModel).ToDomain), total, nil
}

// Save creates or updates a stored file entry
func (r *GormStoredFileRepository) Save(ctx context.Context, file *files.StoredFile) error {
	return translateUniqueViolation(r.db.WithContext(ctx).Save(models.StoredFileModelFromDomain(file)).Error)
}

// Delete removes a stored file entry. The object itself is left in storage.
func (r *GormStoredFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.StoredFileModel](ctx, r.db, id)
}

var _ files.Repository = (*GormStoredFileRepository)(nil)
