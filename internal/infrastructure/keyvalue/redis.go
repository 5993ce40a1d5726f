package keyvalue

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

// RedisStore is a Redis-backed key-value store
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using the provided config. Connectivity is
// verified with a ping retried under exponential backoff, so a store backend
// that is still starting up does not fail the process immediately. This is
// the only retry in the system; gateway calls are never retried.
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Store.Redis.Password,
		DB:       cfg.Store.Redis.DB,
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}
	if err := backoff.Retry(ping, bo); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetRedisAddr(), err)
	}

	return &RedisStore{client: client}, nil
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores the value without expiration
func (rs *RedisStore) Set(ctx context.Context, key, value string) error {
	return rs.client.Set(ctx, key, value, 0).Err()
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}

// Close releases the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
