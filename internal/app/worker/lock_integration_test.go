//go:build integration

package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisLocker_ExclusiveUntilReleased(t *testing.T) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = rdb.Close() })

	first := NewRedisLocker(rdb)
	second := NewRedisLocker(rdb)

	release, ok, err := first.Acquire(ctx, "locks:test", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = second.Acquire(ctx, "locks:test", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "lock is held by the first replica")

	release()

	release2, ok, err := second.Acquire(ctx, "locks:test", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	release2()
}
