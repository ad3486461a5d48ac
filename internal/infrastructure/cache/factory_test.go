package cache

import (
	"context"
	"testing"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func unreachableRedis() config.RedisConfig {
	return config.RedisConfig{Host: "127.0.0.1", Port: 1}
}

func TestLockerFactory_FallsBackToInMemory(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewLockerFactory(unreachableRedis(), WithLogger(zap.New(core)))

	locker, err := f.CreateLocker(context.Background())
	require.NoError(t, err)

	assert.IsType(t, &InMemoryLocker{}, locker)
	assert.Equal(t, 1, logs.Len())
}

func TestLockerFactory_NoFallback(t *testing.T) {
	f := NewLockerFactory(unreachableRedis(), WithInMemoryFallback(false))

	_, err := f.CreateLocker(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis required")
}

func TestLockerFactory_EmptyHost(t *testing.T) {
	f := NewLockerFactory(config.RedisConfig{})

	_, err := f.CreateRedisLocker(context.Background())
	assert.Error(t, err)
}
