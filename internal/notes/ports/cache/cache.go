// Package cache определяет интерфейс кеша.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается, если ключ отсутствует в кеше.
var ErrCacheMiss = errors.New("cache miss")

// Cache определяет операции key-value кеша.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
