package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.NoError(t, c.Close())

	c.CloseFn = func() error { return errors.New("close") }
	require.EqualError(t, c.Close(), "close")
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, Probe(ctx, NewMemoryFake()))
	})

	t.Run("set fails", func(t *testing.T) {
		c := &FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("readonly"))
		}}
		err := Probe(ctx, c)
		require.ErrorContains(t, err, "readonly")
	})

	t.Run("get fails", func(t *testing.T) {
		c := NewMemoryFake()
		c.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}
		require.ErrorIs(t, Probe(ctx, c), redis.Nil)
	})

	t.Run("mismatch", func(t *testing.T) {
		c := NewMemoryFake()
		c.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("stale", nil)
		}
		require.ErrorIs(t, Probe(ctx, c), ErrProbeMismatch)
	})

	t.Run("ttl is bounded", func(t *testing.T) {
		var ttl time.Duration
		c := NewMemoryFake()
		set := c.SetFn
		c.SetFn = func(ctx context.Context, k string, v any, exp time.Duration) *redis.StatusCmd {
			ttl = exp
			return set(ctx, k, v, exp)
		}
		require.NoError(t, Probe(ctx, c))
		require.Equal(t, probeTTL, ttl)
	})
}
