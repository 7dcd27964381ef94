package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wesshacks/wesshacks/internal/logger"
)

// Store maps a token's jti to its user id in Redis. A token is only accepted
// while its jti is present; logout deletes the key, expiry drops it.
type Store struct {
	client *redis.Client
	exp    time.Duration // session lifetime, matches the token lifetime
}

// New creates a session store with the given lifetime.
func New(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

// Save registers a freshly issued token.
func (s *Store) Save(ctx context.Context, jti string, userID uuid.UUID) error {
	key := sessionKey(jti)
	err := s.client.Set(ctx, key, userID.String(), s.exp).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// IsActive reports whether the jti is still live.
func (s *Store) IsActive(ctx context.Context, jti string) (bool, error) {
	key := sessionKey(jti)

	_, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Log.Infow("session lookup failed",
			"key", key,
			"error", err,
		)
		return false, err
	}

	return true, nil
}

// Revoke invalidates the jti. Revoking an unknown jti is not an error.
func (s *Store) Revoke(ctx context.Context, jti string) error {
	key := sessionKey(jti)
	err := s.client.Del(ctx, key).Err()

	logger.Log.Infow("session revoked",
		"key", key,
		"error", err,
	)

	return err
}
