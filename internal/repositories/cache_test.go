package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) *redis.Client {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisC.Terminate(context.Background()) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	return rdb
}

func TestSessionCacheRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	ctx := context.Background()
	repo := NewSessionCacheRepository(rdb, 2*time.Second)

	t.Run("Save and Get", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s1", "42"))

		userID, err := repo.Get(ctx, "s1")
		assert.NoError(t, err)
		assert.Equal(t, "42", userID)
	})

	t.Run("Unknown session", func(t *testing.T) {
		userID, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s2", "42"))
		require.NoError(t, repo.Delete(ctx, "s2"))
		require.NoError(t, repo.Delete(ctx, "s2"))

		userID, err := repo.Get(ctx, "s2")
		assert.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("Expires", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s3", "42"))
		time.Sleep(3 * time.Second)

		userID, err := repo.Get(ctx, "s3")
		assert.NoError(t, err)
		assert.Empty(t, userID)
	})
}

func TestOAuthStateCacheRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	ctx := context.Background()
	repo := NewOAuthStateCacheRepository(rdb, time.Minute)

	require.NoError(t, repo.Save(ctx, "state-1"))

	ok, err := repo.Consume(ctx, "state-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Consume(ctx, "state-1")
	assert.NoError(t, err)
	assert.False(t, ok, "state must be single use")

	ok, err = repo.Consume(ctx, "never-issued")
	assert.NoError(t, err)
	assert.False(t, ok)
}
