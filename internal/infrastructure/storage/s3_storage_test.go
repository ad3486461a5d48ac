package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func localS3Config() *config.StorageConfig {
	return &config.StorageConfig{
		Provider:          "s3",
		Bucket:            "reports",
		S3Endpoint:        "http://localhost:9000",
		S3AccessKeyID:     "test-key",
		S3SecretAccessKey: "test-secret",
		S3UsePathStyle:    true,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := localS3Config()
		cfg.Bucket = ""
		_, err := NewS3ObjectStorage(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("half of a key pair returns error", func(t *testing.T) {
		cfg := localS3Config()
		cfg.S3SecretAccessKey = ""
		_, err := NewS3ObjectStorage(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		store, err := NewS3ObjectStorage(ctx, localS3Config(), WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.Equal(t, "reports", store.Bucket())
	})
}

func TestS3ObjectStorage_DownloadURL(t *testing.T) {
	store, err := NewS3ObjectStorage(context.Background(), localS3Config())
	require.NoError(t, err)

	t.Run("empty key returns error", func(t *testing.T) {
		url, err := store.DownloadURL(context.Background(), "", time.Minute)
		require.Error(t, err)
		assert.Empty(t, url)
	})

	t.Run("presigns against the configured endpoint", func(t *testing.T) {
		url, err := store.DownloadURL(context.Background(), "exports/2024/01/02/x-summary.pdf", time.Hour)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "http://localhost:9000/reports/exports/2024/01/02/"), url)
		assert.Contains(t, url, "X-Amz-Expires=3600")
	})
}

func TestS3ObjectStorage_KeyValidation(t *testing.T) {
	ctx := context.Background()
	store, err := NewS3ObjectStorage(ctx, localS3Config())
	require.NoError(t, err)

	assert.ErrorContains(t, store.Put(ctx, "", []byte("x"), "text/plain"), "storage key is required")
	assert.ErrorContains(t, store.Delete(ctx, ""), "storage key is required")

	_, err = store.Get(ctx, "")
	assert.ErrorContains(t, err, "storage key is required")

	exists, err := store.Exists(ctx, "")
	assert.ErrorContains(t, err, "storage key is required")
	assert.False(t, exists)
}
