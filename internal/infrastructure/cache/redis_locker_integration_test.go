//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisLocker_ExclusiveAcrossClients(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)

	first := NewRedisLocker(client, "test:")
	second := NewRedisLocker(redis.NewClient(client.Options()), "test:")
	t.Cleanup(func() { _ = second.Close() })

	lock, err := first.Obtain(ctx, "schedule:1", time.Minute)
	require.NoError(t, err)

	_, err = second.Obtain(ctx, "schedule:1", time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	require.NoError(t, lock.Release(ctx))
	require.NoError(t, lock.Release(ctx))

	again, err := second.Obtain(ctx, "schedule:1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}
