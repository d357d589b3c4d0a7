package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

// OAuthStateCacheRepository stores one-time OAuth state values in Redis
type OAuthStateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long a login attempt may take
}

// NewOAuthStateCacheRepository creates a new repository instance with the state TTL
func NewOAuthStateCacheRepository(client *redis.Client, expiration time.Duration) *OAuthStateCacheRepository {
	return &OAuthStateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func oauthStateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}

// Save remembers a freshly issued state
func (r *OAuthStateCacheRepository) Save(ctx context.Context, state string) error {
	key := oauthStateKey(state)
	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Consume atomically removes the state and reports whether it was known.
// A state can be consumed at most once.
func (r *OAuthStateCacheRepository) Consume(ctx context.Context, state string) (bool, error) {
	key := oauthStateKey(state)
	_, err := r.client.GetDel(ctx, key).Result()

	logger.Log.Infow("cache getdel",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
