// Package redis backs the search response cache.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache: key not found")

const opTimeout = 5 * time.Second

type Cache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func New(client *redis.Client, defaultTTL time.Duration) *Cache {
	return &Cache{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// FromURL builds a cache from a redis:// URL.
func FromURL(url string, defaultTTL time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return New(redis.NewClient(opts), defaultTTL), nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}

		return "", err
	}

	return value, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.client.Set(ctx, key, value, ttl).Err()
}
