package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotObtained is returned when another holder owns the lock
var ErrNotObtained = errors.New("lock not obtained")

// Locker hands out exclusive, expiring locks by key
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
	Close() error
}

// Lock is a held lock. Release is safe to call after expiry.
type Lock interface {
	Release(ctx context.Context) error
}
