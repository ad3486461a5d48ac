package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var _ files.ObjectStorage = (*GCSObjectStorage)(nil)

// GCSObjectStorage keeps artifacts in a Google Cloud Storage bucket
type GCSObjectStorage struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

// NewGCSObjectStorage creates a GCS store. Without credentialsJSON the
// client uses Application Default Credentials; extra options are passed
// through (emulator endpoints, WithoutAuthentication in tests).
func NewGCSObjectStorage(ctx context.Context, bucket, credentialsJSON string, logger *zap.Logger, extra ...option.ClientOption) (*GCSObjectStorage, error) {
	if bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := extra
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSObjectStorage{client: client, bucket: bucket, logger: logger}, nil
}

func (s *GCSObjectStorage) object(key string) (*storage.ObjectHandle, error) {
	if key == "" {
		return nil, errors.New("storage key is required")
	}
	return s.client.Bucket(s.bucket).Object(key), nil
}

// Put uploads data under key
func (s *GCSObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	obj, err := s.object(key)
	if err != nil {
		return err
	}

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close failed: %w", err)
	}
	return nil
}

// Get opens the object stored under key
func (s *GCSObjectStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.object(key)
	if err != nil {
		return nil, err
	}
	r, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, files.ErrObjectNotFound
		}
		return nil, fmt.Errorf("gcs get failed for %s: %w", key, err)
	}
	return r, nil
}

// Delete removes the object
func (s *GCSObjectStorage) Delete(ctx context.Context, key string) error {
	obj, err := s.object(key)
	if err != nil {
		return err
	}
	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return files.ErrObjectNotFound
		}
		return fmt.Errorf("gcs delete failed for %s: %w", key, err)
	}
	return nil
}

// Exists checks if the object exists
func (s *GCSObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	obj, err := s.object(key)
	if err != nil {
		return false, err
	}
	if _, err := obj.Attrs(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("gcs attrs error: %w", err)
	}
	return true, nil
}

// DownloadURL signs a V4 GET URL. Clients that hold no signing identity
// get files.ErrPresignUnsupported so the caller streams instead.
func (s *GCSObjectStorage) DownloadURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	url, err := s.client.Bucket(s.bucket).SignedURL(key, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(ttl),
		Scheme:  storage.SigningSchemeV4,
	})
	if err != nil {
		s.logger.Warn("GCS signing unavailable, falling back to streaming",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", files.ErrPresignUnsupported
	}
	return url, nil
}

// Close closes the GCS client
func (s *GCSObjectStorage) Close() error {
	return s.client.Close()
}
