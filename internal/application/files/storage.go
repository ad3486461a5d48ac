package files

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrObjectNotFound is returned by ObjectStorage when a key does not exist
	ErrObjectNotFound = errors.New("object not found")

	// ErrPresignUnsupported is returned by stores that cannot hand out URLs;
	// callers fall back to streaming the object.
	ErrPresignUnsupported = errors.New("presigned urls not supported")
)

// ObjectStorage is the binary store behind the Files module
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
