// internal/infrastructure/cache/cart_cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached cart exists for the owner
var ErrCacheMiss = errors.New("cart not in cache")

// CartCache is a Redis-backed read-through cache for cart aggregates.
// Entries are written on read and after every save, and expire after TTL
// so a dropped invalidation cannot serve stale data forever.
type CartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartCache creates a new cart cache
func NewCartCache(client *redis.Client, ttl time.Duration) *CartCache {
	return &CartCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached cart for the owner, or ErrCacheMiss
func (c *CartCache) Get(ctx context.Context, ownerID uint) (*cart.Cart, error) {
	data, err := c.client.Get(ctx, cartKey(ownerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart cache: %w", err)
	}

	var cached cart.Cart
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached cart: %w", err)
	}

	return &cached, nil
}

// Set stores the cart with the configured TTL
func (c *CartCache) Set(ctx context.Context, aggregate *cart.Cart) error {
	data, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("failed to encode cart for cache: %w", err)
	}

	return c.client.Set(ctx, cartKey(aggregate.OwnerID), data, c.ttl).Err()
}

// Invalidate drops the cached cart for the owner
func (c *CartCache) Invalidate(ctx context.Context, ownerID uint) error {
	return c.client.Del(ctx, cartKey(ownerID)).Err()
}

func cartKey(ownerID uint) string {
	return fmt.Sprintf("cart:owner:%d", ownerID)
}
