package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sagheerabbass/talenttrack/internal/storage"
)

const tokenKeyPrefix = "refresh:"

// TokenStore keeps opaque refresh tokens in redis, keyed by token value
// with the owning user id as payload. Expiry is handled by redis TTLs.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a redis-backed refresh token store.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

var _ storage.TokenStore = (*TokenStore)(nil)

func (s *TokenStore) Save(ctx context.Context, token string, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKeyPrefix+token, userID, ttl).Err()
}

// UserID resolves a refresh token to its owning user. Unknown or expired
// tokens map to storage.ErrNotFound.
func (s *TokenStore) UserID(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKeyPrefix+token).Err()
}
