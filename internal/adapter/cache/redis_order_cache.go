package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisOrderCache holds the confirmation-page summary written by the
// fulfillment worker. The orders table stays authoritative; a cache
// miss is not an error.
type RedisOrderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisOrderCache(rdb *redis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{rdb: rdb, ttl: ttl}
}

func (c *RedisOrderCache) SetSummary(ctx context.Context, orderID string, s usecase.OrderSummary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, "order:summary:"+orderID, b, c.ttl).Err()
}

func (c *RedisOrderCache) GetSummary(ctx context.Context, orderID string) (*usecase.OrderSummary, error) {
	raw, err := c.rdb.Get(ctx, "order:summary:"+orderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var s usecase.OrderSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ usecase.OrderCache = (*RedisOrderCache)(nil)
