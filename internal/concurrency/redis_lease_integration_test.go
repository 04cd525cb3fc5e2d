package concurrency

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisLeaser_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var container testcontainers.Container
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
	}()
	if container == nil {
		if err != nil {
			t.Skipf("Skipping integration test, docker unavailable: %v", err)
		}
		return
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	leaser := NewRedisLeaser(client, "subrace:test:")

	t.Run("second acquire fails while held", func(t *testing.T) {
		first, err := leaser.TryAcquire(ctx, "scoring:day", time.Minute)
		require.NoError(t, err)

		_, err = leaser.TryAcquire(ctx, "scoring:day", time.Minute)
		assert.ErrorIs(t, err, ErrLeaseHeld)

		require.NoError(t, first.Release(ctx))

		second, err := leaser.TryAcquire(ctx, "scoring:day", time.Minute)
		require.NoError(t, err)
		require.NoError(t, second.Release(ctx))
	})

	t.Run("expired lease is not released by the old holder", func(t *testing.T) {
		old, err := leaser.TryAcquire(ctx, "short", 200*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(400 * time.Millisecond)

		current, err := leaser.TryAcquire(ctx, "short", time.Minute)
		require.NoError(t, err)

		require.NoError(t, old.Release(ctx))

		_, err = leaser.TryAcquire(ctx, "short", time.Minute)
		assert.ErrorIs(t, err, ErrLeaseHeld, "old holder must not delete the new lease")

		require.NoError(t, current.Release(ctx))
	})
}
