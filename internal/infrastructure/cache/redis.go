package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisStore adapts a Redis client to the Cache interface
type RedisStore struct {
	client *redis.Client
}

var _ Cache = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed cache
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := rs.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a key-value pair with expiration
func (rs *RedisStore) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return rs.client.Set(ctx, key, value, expiration).Err()
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}
