package storage

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the object store selected by cfg.Provider
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (files.ObjectStorage, error) {
	switch cfg.Provider {
	case "", "filesystem":
		return NewFilesystemStorage(cfg.BasePath)
	case "s3":
		s3, err := NewS3ObjectStorage(ctx, cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3, nil
	case "gcs":
		return NewGCSObjectStorage(ctx, cfg.Bucket, cfg.GCSCredentialsJSON, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
