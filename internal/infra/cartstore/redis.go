// Package cartstore persists cart lines in Redis, keyed by cart ID.
// Cart state is device-scoped, best-effort and expiring, so a plain
// key-value store with a TTL fits it.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func key(cartID string) string {
	return "cart:" + cartID
}

// Load returns the stored lines for the cart. An absent key yields an
// empty cart; a malformed payload is an error the caller degrades on.
func (s *RedisStore) Load(ctx context.Context, cartID string) ([]domcart.Line, error) {
	raw, err := s.client.Get(ctx, key(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}

	var lines []domcart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return lines, nil
}

// Save overwrites the full line set, refreshing the TTL. An empty cart
// deletes the key instead of storing an empty payload.
func (s *RedisStore) Save(ctx context.Context, cartID string, lines []domcart.Line) error {
	if len(lines) == 0 {
		if err := s.client.Del(ctx, key(cartID)).Err(); err != nil {
			return fmt.Errorf("clear cart %s: %w", cartID, err)
		}
		return nil
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cartID, err)
	}
	if err := s.client.Set(ctx, key(cartID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}
