package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryLocker implements Locker with a process-local map.
// It is suitable for single-instance deployments and testing.
type InMemoryLocker struct {
	mu      sync.Mutex
	held    map[string]heldLock
	nextTok uint64
}

type heldLock struct {
	token     uint64
	expiresAt time.Time
}

// NewInMemoryLocker creates a new in-memory locker
func NewInMemoryLocker() *InMemoryLocker {
	return &InMemoryLocker{held: make(map[string]heldLock)}
}

// Obtain takes the lock when it is free or its previous holder expired
func (l *InMemoryLocker) Obtain(_ context.Context, key string, ttl time.Duration) (Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if h, ok := l.held[key]; ok && now.Before(h.expiresAt) {
		return nil, ErrNotObtained
	}
	l.nextTok++
	l.held[key] = heldLock{token: l.nextTok, expiresAt: now.Add(ttl)}
	return &memoryLock{owner: l, key: key, token: l.nextTok}, nil
}

// Close drops every held lock
func (l *InMemoryLocker) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.held)
	return nil
}

// Size returns the number of tracked keys (for testing)
func (l *InMemoryLocker) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.held)
}

type memoryLock struct {
	owner *InMemoryLocker
	key   string
	token uint64
}

// Release frees the key unless it has since been taken by another holder
func (m *memoryLock) Release(context.Context) error {
	m.owner.mu.Lock()
	defer m.owner.mu.Unlock()
	if h, ok := m.owner.held[m.key]; ok && h.token == m.token {
		delete(m.owner.held, m.key)
	}
	return nil
}

var _ Locker = (*InMemoryLocker)(nil)
