package kvs

import (
	"context"
	"fmt"
	"time"

	"order-engine/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Store is the narrow key/TTL contract the lock manager and the sequence
// allocator need: atomic set-if-absent-with-expiry and atomic
// increment-with-expiry.
type Store interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) (int64, error)
	IncrBy(ctx context.Context, key string, value int64) (int64, error)
	PExpireAt(ctx context.Context, key string, at time.Time) error
}

type redisStore struct {
	client *redis.Client
}

func NewStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, value, ttl).Result()
}

func (s *redisStore) Del(ctx context.Context, key string) (int64, error) {
	return s.client.Del(ctx, key).Result()
}

func (s *redisStore) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return s.client.IncrBy(ctx, key, value).Result()
}

func (s *redisStore) PExpireAt(ctx context.Context, key string, at time.Time) error {
	return s.client.PExpireAt(ctx, key, at).Err()
}

// Connect opens and verifies the redis connection.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}
