package models

import (
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/google/uuid"
)

// StoredFileModel is the persistence model for the stored_files table
type StoredFileModel struct {
	BaseModel
	Name        string         `gorm:"type:varchar(255);not null"`
	ContentType string         `gorm:"type:varchar(100);not null"`
	Size        int64          `gorm:"not null;default:0"`
	StorageKey  string         `gorm:"type:varchar(500);not null;uniqueIndex"`
	Category    files.Category `gorm:"type:varchar(20);not null;index"`
	ReportType  string         `gorm:"type:varchar(50);index"`
	Format      string         `gorm:"type:varchar(30)"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (StoredFileModel) TableName() string {
	return "stored_files"
}

// ToDomain converts the persistence model to a domain StoredFile
func (m *StoredFileModel) ToDomain() *files.StoredFile {
	return &files.StoredFile{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		ContentType: m.ContentType,
		Size:        m.Size,
		StorageKey:  m.StorageKey,
		Category:    m.Category,
		ReportType:  m.ReportType,
		Format:      m.Format,
		CreatedBy:   m.CreatedBy,
	}
}

// StoredFileModelFromDomain creates a persistence model from a domain StoredFile
func StoredFileModelFromDomain(f *files.StoredFile) *StoredFileModel {
	m := &StoredFileModel{
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		StorageKey:  f.StorageKey,
		Category:    f.Category,
		ReportType:  f.ReportType,
		Format:      f.Format,
		CreatedBy:   f.CreatedBy,
	}
	m.FromDomainBaseEntity(f.BaseEntity)
	return m
}
