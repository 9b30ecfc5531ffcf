// Package redis stores cached views of rendered pages in Redis and drops
// them when the underlying records change.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

const keyPrefix = "view:"

// ViewCache keeps JSON snapshots of views keyed by their path.
type ViewCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewViewCache creates a cache over client. Entries expire after ttl.
func NewViewCache(client goredis.Cmdable, ttl time.Duration) *ViewCache {
	return &ViewCache{client: client, ttl: ttl}
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// Key returns the Redis key holding the view for path.
func Key(path string) string {
	return keyPrefix + path
}

// GetImage returns the cached image view for path. A miss reports false with a nil error.
func (c *ViewCache) GetImage(ctx context.Context, path string) (*domain.Image, bool, error) {
	data, err := c.client.Get(ctx, Key(path)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get view %s: %w", path, err)
	}

	var img domain.Image
	if err := json.Unmarshal(data, &img); err != nil {
		return nil, false, fmt.Errorf("decode view %s: %w", path, err)
	}
	return &img, true, nil
}

// SetImage stores the image view for path.
func (c *ViewCache) SetImage(ctx context.Context, path string, img *domain.Image) error {
	data, err := json.Marshal(img)
	if err != nil {
		return fmt.Errorf("encode view %s: %w", path, err)
	}

	if err := c.client.Set(ctx, Key(path), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set view %s: %w", path, err)
	}
	return nil
}

// Revalidate drops the cached view for path so the next read rebuilds it.
func (c *ViewCache) Revalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, Key(path)).Err(); err != nil {
		return fmt.Errorf("revalidate %s: %w", path, err)
	}
	return nil
}

// NopCache never stores anything. Used when Redis is not configured.
type NopCache struct{}

func (NopCache) GetImage(context.Context, string) (*domain.Image, bool, error) {
	return nil, false, nil
}
func (NopCache) SetImage(context.Context, string, *domain.Image) error { return nil }
func (NopCache) Revalidate(context.Context, string) error              { return nil }
