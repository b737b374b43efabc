package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps each document in a plain Redis string key.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects lazily to addr; the first command opens the connection.
func NewRedisKV(addr string) *RedisKV {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisKV{client: rdb}
}

// NewRedisKVFromClient wraps an existing client.
func NewRedisKVFromClient(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the client connections.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
