package files

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// Category distinguishes generated exports from user uploads
type Category string

const (
	CategoryExport Category = "export"
	CategoryUpload Category = "upload"
)

// StoredFile indexes a binary object kept in the artifact store
type StoredFile struct {
	shared.BaseEntity
	Name        string
	ContentType string
	Size        int64
	StorageKey  string
	Category    Category
	ReportType  string
	Format      string
	CreatedBy   *uuid.UUID
}

// NewStoredFile creates an index entry for an object already written to storage
func NewStoredFile(name, contentType, storageKey string, size int64, category Category) (*StoredFile, error) {
	if err := shared.ValidateRequired("name", name); err != nil {
		return nil, err
	}
	if err := shared.ValidateRequired("storage_key", storageKey); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, shared.ErrInvalidInput.WithMessage("size cannot be negative")
	}
	return &StoredFile{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		ContentType: contentType,
		Size:        size,
		StorageKey:  storageKey,
		Category:    category,
	}, nil
}

// Repository persists file index entries.
// Recognised filter keys: category, report_type, format.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoredFile, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StoredFile, int64, error)
	Save(ctx context.Context, file *StoredFile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
