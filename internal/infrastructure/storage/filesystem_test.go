package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	key := "exports/2024/01/02/abc-summary.pdf"
	require.NoError(t, store.Put(ctx, key, []byte("%PDF"), "application/pdf"))

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := store.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	require.NoError(t, store.Delete(ctx, key))
	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFilesystemStorage_Overwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "a.txt", []byte("one"), ""))
	require.NoError(t, store.Put(ctx, "a.txt", []byte("two"), ""))

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFilesystemStorage_Missing(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, "nope.pdf")
	assert.ErrorIs(t, err, files.ErrObjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope.pdf"), files.ErrObjectNotFound)
}

func TestFilesystemStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = store.Put(ctx, "../../outside.txt", []byte("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the base path")

	_, err = store.Get(ctx, "")
	assert.ErrorContains(t, err, "storage key is required")
}

func TestFilesystemStorage_NoPresign(t *testing.T) {
	store, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.DownloadURL(context.Background(), "a", time.Minute)
	assert.ErrorIs(t, err, files.ErrPresignUnsupported)
}
