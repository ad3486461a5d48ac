package files

import (
	"io"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/google/uuid"
)

// StoreArtifactRequest describes a generated artifact to persist
type StoreArtifactRequest struct {
	Name        string
	ContentType string
	Data        []byte
	Category    files.Category
	ReportType  string
	Format      string
	CreatedBy   *uuid.UUID
}

// FileListFilter represents filter options for the file list
type FileListFilter struct {
	Search     string `form:"search"`
	Category   string `form:"category" binding:"omitempty,oneof=export upload"`
	ReportType string `form:"report_type"`
	Format     string `form:"format"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// FileResponse represents a stored file in API responses
type FileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	Category    string     `json:"category"`
	ReportType  string     `json:"report_type,omitempty"`
	Format      string     `json:"format,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Download is either a presigned URL or an open object stream. Callers
// must close Body when it is set.
type Download struct {
	File FileResponse
	URL  string
	Body io.ReadCloser
}

// ToFileResponse converts a domain StoredFile to FileResponse
func ToFileResponse(f *files.StoredFile) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		Category:    string(f.Category),
		ReportType:  f.ReportType,
		Format:      f.Format,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
	}
}

// ToFileResponses converts a slice of domain files
func ToFileResponses(list []files.StoredFile) []FileResponse {
	out := make([]FileResponse, len(list))
	for i := range list {
		out[i] = ToFileResponse(&list[i])
	}
	return out
}
