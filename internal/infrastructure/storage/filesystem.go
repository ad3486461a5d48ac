package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
)

var _ files.ObjectStorage = (*FilesystemStorage)(nil)

// FilesystemStorage keeps objects under a base directory. It cannot presign,
// so downloads are streamed by the API.
type FilesystemStorage struct {
	root string
}

// NewFilesystemStorage creates the base directory if needed
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if basePath == "" {
		return nil, errors.New("storage base path is required")
	}
	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve storage base path: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage base path: %w", err)
	}
	return &FilesystemStorage{root: root}, nil
}

// resolve maps a slash-separated key into the base directory and rejects
// keys that would escape it.
func (s *FilesystemStorage) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	p := filepath.Join(s.root, filepath.FromSlash(key))
	if p != s.root && !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("storage key %q escapes the base path", key)
	}
	return p, nil
}

// Put writes data atomically through a temp file and rename
func (s *FilesystemStorage) Put(_ context.Context, key string, data []byte, _ string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp object: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit object: %w", err)
	}
	return nil
}

// Get opens the object for reading
func (s *FilesystemStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	p, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, files.ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the object
func (s *FilesystemStorage) Delete(_ context.Context, key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return files.ErrObjectNotFound
		}
		return err
	}
	return nil
}

// Exists checks if the object exists
func (s *FilesystemStorage) Exists(_ context.Context, key string) (bool, error) {
	p, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// DownloadURL always returns files.ErrPresignUnsupported
func (s *FilesystemStorage) DownloadURL(context.Context, string, time.Duration) (string, error) {
	return "", files.ErrPresignUnsupported
}
