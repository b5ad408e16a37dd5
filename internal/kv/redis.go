package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the semi-persisted key-value boundary used for per-user portal
// settings. The core only sees this interface.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(redisAddr string) (*RedisKV, error) {
	const op = "kv.NewRedisKV"

	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisKV{client: client}, nil
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "kv.RedisKV.Get"

	val, err := r.client.Get(ctx, fmt.Sprintf("portal:%s", key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	const op = "kv.RedisKV.Set"

	if err := r.client.Set(ctx, fmt.Sprintf("portal:%s", key), value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
