package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafe-map/internal/cache"
	"cafe-map/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()
	healthyDB := func(called *bool) *database.FakeDB {
		return &database.FakeDB{PingFn: func(context.Context) error { *called = true; return nil }}
	}

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return errors.New("fail") }}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(db, &cache.FakeCache{})(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(healthyDB(&dbCalled), cch)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		dbCalled := false
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(healthyDB(&dbCalled), cache.NewMemoryFake())(e.NewContext(req, rec))
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})

	t.Run("no cache configured", func(t *testing.T) {
		dbCalled := false
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(healthyDB(&dbCalled), nil)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRootHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, RootHandler()(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, banner, rec.Body.String())
}
