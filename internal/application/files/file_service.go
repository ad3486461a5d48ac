package files

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileService indexes artifacts in the file repository and keeps their
// bytes in object storage.
type FileService struct {
	repo       files.Repository
	store      ObjectStorage
	presignTTL time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewFileService creates a new FileService
func NewFileService(repo files.Repository, store ObjectStorage, presignTTL time.Duration, logger *zap.Logger) *FileService {
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{
		repo:       repo,
		store:      store,
		presignTTL: presignTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// StoreArtifact writes the bytes first and then indexes them. If indexing
// fails the object is removed again.
func (s *FileService) StoreArtifact(ctx context.Context, req StoreArtifactRequest) (*FileResponse, error) {
	if req.Category == "" {
		req.Category = files.CategoryExport
	}
	key := s.objectKey(req.Category, req.Name)

	file, err := files.NewStoredFile(req.Name, req.ContentType, key, int64(len(req.Data)), req.Category)
	if err != nil {
		return nil, err
	}
	file.ReportType = req.ReportType
	file.Format = req.Format
	file.CreatedBy = req.CreatedBy

	if err := s.store.Put(ctx, key, req.Data, req.ContentType); err != nil {
		return nil, fmt.Errorf("store object %s: %w", key, err)
	}
	if err := s.repo.Save(ctx, file); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Failed to remove orphaned object",
				zap.String("key", key),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	resp := ToFileResponse(file)
	return &resp, nil
}

// List returns a page of stored files
func (s *FileService) List(ctx context.Context, filter FileListFilter) ([]FileResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.ReportType != "" {
		domainFilter.Filters["report_type"] = filter.ReportType
	}
	if filter.Format != "" {
		domainFilter.Filters["format"] = filter.Format
	}

	list, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToFileResponses(list), total, nil
}

// GetByID returns a stored file by ID
func (s *FileService) GetByID(ctx context.Context, id uuid.UUID) (*FileResponse, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFileResponse(file)
	return &resp, nil
}

// Open prefers a presigned URL and falls back to streaming the object
func (s *FileService) Open(ctx context.Context, id uuid.UUID) (*Download, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dl := &Download{File: ToFileResponse(file)}

	url, err := s.store.DownloadURL(ctx, file.StorageKey, s.presignTTL)
	if err == nil {
		dl.URL = url
		return dl, nil
	}
	if !errors.Is(err, ErrPresignUnsupported) {
		return nil, fmt.Errorf("presign %s: %w", file.StorageKey, err)
	}

	body, err := s.store.Get(ctx, file.StorageKey)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, shared.ErrNotFound.WithMessage("file content is missing")
		}
		return nil, err
	}
	dl.Body = body
	return dl, nil
}

// Delete removes the object and its index entry. A missing object is not an error.
func (s *FileService) Delete(ctx context.Context, id uuid.UUID) error {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, file.StorageKey); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return fmt.Errorf("delete object %s: %w", file.StorageKey, err)
	}
	return s.repo.Delete(ctx, id)
}

// objectKey builds "<category>s/YYYY/MM/DD/<uuid>-<name>"
func (s *FileService) objectKey(category files.Category, name string) string {
	base := unsafeKeyChars.ReplaceAllString(path.Base(strings.ReplaceAll(name, "\\", "/")), "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return path.Join(string(category)+"s", s.now().UTC().Format("2006/01/02"), uuid.NewString()+"-"+base)
}
