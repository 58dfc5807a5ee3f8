// File: internal/cache/cache.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 封裝 Redis 的最小操作集合，測試時以 FakeCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Close() error
}

const (
	probeKey = "cafe-map:health"
	probeTTL = 10 * time.Second
)

// ErrProbeMismatch 寫入後讀回的值不一致
var ErrProbeMismatch = errors.New("cache probe value mismatch")

// Probe 寫入一個短效鍵後讀回，確認快取可讀可寫
func Probe(ctx context.Context, c Cache) error {
	want := time.Now().UTC().Format(time.RFC3339Nano)
	if err := c.Set(ctx, probeKey, want, probeTTL).Err(); err != nil {
		return fmt.Errorf("Probe set: %w", err)
	}
	got, err := c.Get(ctx, probeKey).Result()
	if err != nil {
		return fmt.Errorf("Probe get: %w", err)
	}
	if got != want {
		return ErrProbeMismatch
	}
	return nil
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// NewMemoryFake 回傳以 map 保存資料的 FakeCache，Probe 測試使用
func NewMemoryFake() *FakeCache {
	data := map[string]string{}
	return &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			data[key] = fmt.Sprint(value)
			return redis.NewStatusResult("OK", nil)
		},
	}
}
