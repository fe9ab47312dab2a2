package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"apparel-storefront/internal/domain"
)

// RedisStorage keeps one guest cart as a single JSON array under the key
// "cart:<guestID>", the same wire format as the file backend. Carts expire
// after ttl of inactivity; every save refreshes the timer.
type RedisStorage struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, guestID string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, key: "cart:" + guestID, ttl: ttl}
}

func (r *RedisStorage) Load(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", r.key, err)
	}
	return lines, nil
}

func (r *RedisStorage) Save(ctx context.Context, lines []domain.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
