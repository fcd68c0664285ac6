package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings, loaded from the environment.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect establishes a connection to a Redis server, retrying up to
// cfg.RetryAttempts times with cfg.RetryInterval between attempts.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	for i := 0; i < cfg.RetryAttempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// RedisKV implements KV on top of a Redis client. Values are stored without
// expiration; the engine bounds growth by truncating histories itself.
type RedisKV struct {
	db redis.UniversalClient
}

// NewRedisKV wraps an established Redis client.
func NewRedisKV(client redis.UniversalClient) *RedisKV {
	return &RedisKV{db: client}
}

// Get returns the value stored under key; redis.Nil maps to ErrKeyNotFound.
func (s *RedisKV) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	val, err := s.db.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Set stores value under key without expiration.
func (s *RedisKV) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Set(context.Background(), key, value, 0).Err()
}

// Delete removes the key; absent keys are ignored by Redis.
func (s *RedisKV) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Del(context.Background(), key).Err()
}

// Close terminates the underlying Redis connection.
func (s *RedisKV) Close() error {
	return s.db.Close()
}
