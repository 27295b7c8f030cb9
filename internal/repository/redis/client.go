package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 3 * time.Second

// SuggestionCache keeps provider suggestions so identical positions do not
// hit the provider twice.
type SuggestionCache struct {
	client *redis.Client
}

// Connect pings the server before returning. On failure the client is closed
// and the caller is expected to run without a cache.
func Connect(ctx context.Context, addr, password string) (*SuggestionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Printf("[REDIS] Connected to %s", addr)
	return &SuggestionCache{client: client}, nil
}

func (c *SuggestionCache) Close() error {
	return c.client.Close()
}

func (c *SuggestionCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Get reports a missing key as ("", nil).
func (c *SuggestionCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *SuggestionCache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}
