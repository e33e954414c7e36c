package cache

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps per-session cart state in two keys per scope:
// a hash of product id to quantity and a hash holding the stored
// discount. Both expire together after the idle TTL.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(scope string) string     { return "cart:items:" + scope }
func discountKey(scope string) string { return "cart:discount:" + scope }

func (s *RedisCartStore) touch(ctx context.Context, scope string) {
	if s.ttl > 0 {
		s.rdb.Expire(ctx, cartKey(scope), s.ttl)
		s.rdb.Expire(ctx, discountKey(scope), s.ttl)
	}
}

func (s *RedisCartStore) Entries(ctx context.Context, scope string) ([]domain.CartEntry, error) {
	m, err := s.rdb.HGetAll(ctx, cartKey(scope)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.CartEntry, 0, len(m))
	for id, raw := range m {
		qty, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart entry %s: %w", id, err)
		}
		if qty > 0 {
			entries = append(entries, domain.CartEntry{ProductID: id, Quantity: qty})
		}
	}
	// hashes have no ordering; keep cart views stable across reloads
	sort.Slice(entries, func(i, j int) bool { return entries[i].ProductID < entries[j].ProductID })
	return entries, nil
}

func (s *RedisCartStore) Add(ctx context.Context, scope, productID string, qty int64) error {
	if err := s.rdb.HIncrBy(ctx, cartKey(scope), productID, qty).Err(); err != nil {
		return err
	}
	s.touch(ctx, scope)
	return nil
}

func (s *RedisCartStore) SetQuantity(ctx context.Context, scope, productID string, qty int64) error {
	if qty <= 0 {
		return s.Remove(ctx, scope, productID)
	}
	if err := s.rdb.HSet(ctx, cartKey(scope), productID, qty).Err(); err != nil {
		return err
	}
	s.touch(ctx, scope)
	return nil
}

func (s *RedisCartStore) Remove(ctx context.Context, scope, productID string) error {
	return s.rdb.HDel(ctx, cartKey(scope), productID).Err()
}

func (s *RedisCartStore) Discount(ctx context.Context, scope string) (string, float64, bool, error) {
	m, err := s.rdb.HGetAll(ctx, discountKey(scope)).Result()
	if err != nil {
		return "", 0, false, err
	}
	code, ok := m["code"]
	if !ok || code == "" {
		return "", 0, false, nil
	}
	percent, err := strconv.ParseFloat(m["percent"], 64)
	if err != nil {
		return "", 0, false, fmt.Errorf("corrupt stored discount: %w", err)
	}
	return code, percent, true, nil
}

func (s *RedisCartStore) SetDiscount(ctx context.Context, scope, code string, percent float64) error {
	if err := s.rdb.HSet(ctx, discountKey(scope), "code", code, "percent", percent).Err(); err != nil {
		return err
	}
	s.touch(ctx, scope)
	return nil
}

func (s *RedisCartStore) ClearDiscount(ctx context.Context, scope string) error {
	return s.rdb.Del(ctx, discountKey(scope)).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, scope string) error {
	return s.rdb.Del(ctx, cartKey(scope), discountKey(scope)).Err()
}

var _ usecase.CartStore = (*RedisCartStore)(nil)
