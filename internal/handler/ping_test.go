package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealerhub/internal/cache"
	"dealerhub/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	t.Run("資料庫異常", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return errors.New("down") }}
		ctx, rec := newPingCtx()
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("快取異常", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		cch := &cache.FakeCache{
			SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				cmd := redis.NewStatusCmd(ctx)
				cmd.SetErr(errors.New("down"))
				return cmd
			},
		}
		ctx, rec := newPingCtx()
		require.NoError(t, PingHandler(db, cch)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("正常", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		cch := &cache.FakeCache{
			SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				require.Equal(t, "ping", key)
				cmd := redis.NewStatusCmd(ctx)
				cmd.SetVal("OK")
				return cmd
			},
		}
		ctx, rec := newPingCtx()
		require.NoError(t, PingHandler(db, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
