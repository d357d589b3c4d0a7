package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

// SessionCacheRepository keeps login sessions in Redis
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionCacheRepository creates a new repository instance with the session TTL
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session and binds it to userID
func (r *SessionCacheRepository) Save(ctx context.Context, sessionID, userID string) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the user bound to the session, or "" when the session is unknown or expired
func (r *SessionCacheRepository) Get(ctx context.Context, sessionID string) (string, error) {
	key := sessionKey(sessionID)
	userID, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("cache get",
		"key", key,
		"result", userID,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (r *SessionCacheRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	removed, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow("cache del",
		"key", key,
		"result", removed,
		"error", err,
	)

	return err
}
