package cache

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"go.uber.org/zap"
)

// LockerFactory creates run lockers based on configuration
type LockerFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// LockerFactoryOption is a functional option for configuring the factory
type LockerFactoryOption func(*LockerFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory
// locker when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewLockerFactory creates a new factory
func NewLockerFactory(cfg config.RedisConfig, opts ...LockerFactoryOption) *LockerFactory {
	f := &LockerFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateRedisLocker connects to Redis and returns a RedisLocker
func (f *LockerFactory) CreateRedisLocker(ctx context.Context) (*RedisLocker, error) {
	if f.redisConfig.Host == "" {
		return nil, fmt.Errorf("redis host is not configured")
	}
	client, err := NewRedisClient(ctx, f.redisConfig)
	if err != nil {
		return nil, err
	}
	return NewRedisLocker(client, ""), nil
}

// CreateLocker prefers Redis and falls back to an in-memory locker when
// allowed.
//
// WARNING: in-memory locks are not shared between instances, so two
// instances may run the same schedule.
func (f *LockerFactory) CreateLocker(ctx context.Context) (Locker, error) {
	locker, err := f.CreateRedisLocker(ctx)
	if err == nil {
		f.logger.Info("Using Redis run locks", zap.String("addr", f.redisConfig.Addr()))
		return locker, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for run locks but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory run locks. "+
		"Scheduled reports may run more than once in multi-instance deployments.",
		zap.Error(err),
	)
	return NewInMemoryLocker(), nil
}
