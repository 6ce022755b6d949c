package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"sales-crm.backend/pkg/metrics"
)

// NewClient connects to redis and verifies the connection
func NewClient(url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	if password != "" {
		opts.Password = password
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// Cache is a redis-backed JSON view cache for expensive aggregate reads.
// Cached views are dropped on mutation and recomputed on the next read; the
// cache is never the source of truth.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	m      *metrics.Metrics
}

// New creates a cache. m may be nil to skip hit/miss accounting.
func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{client: client, ttl: ttl, m: m}
}

// GetJSON loads a cached view into dest. The second return is false on a
// miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			if c.m != nil {
				c.m.IncrCacheMiss(key)
			}
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	if c.m != nil {
		c.m.IncrCacheHit(key)
	}
	return true, nil
}

// SetJSON stores a view with the configured TTL
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate removes cached views
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}
