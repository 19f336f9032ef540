package login

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"votercheck/pkg/platform/sentinel"
)

// Redis key prefix for pending login tokens
const loginTokenKeyPrefix = "login:token:"

// RedisTokenStore is a Redis-backed TokenStore. Expiry is enforced by Redis
// key TTLs and consumption uses GETDEL, so a token can be redeemed exactly
// once across instances.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Save(ctx context.Context, token, voterID string, ttl time.Duration) error {
	key := loginTokenKeyPrefix + token
	if err := s.client.Set(ctx, key, voterID, ttl).Err(); err != nil {
		return fmt.Errorf("save login token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Consume(ctx context.Context, token string) (string, error) {
	key := loginTokenKeyPrefix + token
	voterID, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("login token: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("consume login token: %w", err)
	}
	return voterID, nil
}
