package cache

import (
	"context"
	"fmt"
	"time"

	"slotpoll/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin wrapper over the redis client used for computed
// schedule results.
type Cache struct {
	client *redis.Client
}

func InitCache(addr, password string, db int) (*Cache, error) {
	logger.Info("Initializing redis cache...", "addr", addr, "db", db)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis cache initialized successfully")
	return &Cache{client: client}, nil
}

// Get returns the cached value, or empty string on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Client() *redis.Client {
	return c.client
}
