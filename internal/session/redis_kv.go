package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV persists kiosk state in Redis. A zero TTL keeps records until
// an explicit reset.
type RedisKV struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisKV creates a Redis-backed KV.
func NewRedisKV(client *redis.Client, ttl time.Duration) *RedisKV {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	return &RedisKV{client: client, ttl: ttl}
}

// Get returns the stored value, or (nil, nil) when the key does not exist.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("session: failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes a single key.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to write %s: %w", key, err)
	}
	return nil
}

// SetMulti writes all entries in one transactional pipeline so a partial
// commit is never observable.
func (r *RedisKV) SetMulti(ctx context.Context, entries map[string][]byte) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, k, v, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: failed multi-key write: %w", err)
	}
	return nil
}

// Delete removes the given keys.
func (r *RedisKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session: failed to delete keys: %w", err)
	}
	return nil
}
