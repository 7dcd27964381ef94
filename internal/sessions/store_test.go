package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	store := New(rdb, 2*time.Second)
	userID := uuid.New()

	t.Run("Save and IsActive", func(t *testing.T) {
		jti := uuid.NewString()

		err := store.Save(ctx, jti, userID)
		assert.NoError(t, err)

		active, err := store.IsActive(ctx, jti)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("Unknown jti is inactive", func(t *testing.T) {
		active, err := store.IsActive(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("Revoke", func(t *testing.T) {
		jti := uuid.NewString()

		err := store.Save(ctx, jti, userID)
		assert.NoError(t, err)

		err = store.Revoke(ctx, jti)
		assert.NoError(t, err)

		active, err := store.IsActive(ctx, jti)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("Expires", func(t *testing.T) {
		jti := uuid.NewString()

		err := store.Save(ctx, jti, userID)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		active, err := store.IsActive(ctx, jti)
		assert.NoError(t, err)
		assert.False(t, active)
	})
}
