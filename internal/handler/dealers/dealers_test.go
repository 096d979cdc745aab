package dealers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealerhub/internal/gateway"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newGatewayClient(t *testing.T, h http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, 2*time.Second)
}

func newCtx(path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestListDealersHandler(t *testing.T) {
	t.Run("all dealers", func(t *testing.T) {
		gw := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/fetchDealers", r.URL.Path)
			w.Write([]byte(`[{"id":1,"state":"Kansas"}]`))
		})
		ctx, rec := newCtx("/dealers")
		require.NoError(t, ListDealersHandler(gw)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":200`)
		require.Contains(t, rec.Body.String(), `"Kansas"`)
	})

	t.Run("by state", func(t *testing.T) {
		gw := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/fetchDealers/Texas", r.URL.Path)
			w.Write([]byte(`[]`))
		})
		ctx, rec := newCtx("/dealers/state/Texas")
		ctx.SetParamNames("state")
		ctx.SetParamValues("Texas")
		require.NoError(t, ListDealersHandler(gw)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		// 空結果回傳空陣列而非 null
		require.Contains(t, rec.Body.String(), `"dealers":[]`)
	})

	t.Run("upstream failure", func(t *testing.T) {
		gw := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		ctx, rec := newCtx("/dealers")
		require.NoError(t, ListDealersHandler(gw)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Error fetching dealers")
	})
}

func TestGetDealerHandler(t *testing.T) {
	t.Run("invalid id skips outbound call", func(t *testing.T) {
		called := false
		gw := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		for _, id := range []string{"0", "", "abc"} {
			ctx, rec := newCtx("/dealers/" + id)
			ctx.SetParamNames("id")
			ctx.SetParamValues(id)
			require.NoError(t, GetDealerHandler(gw)(ctx))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "Bad Request")
		}
		require.False(t, called)
	})

	t.Run("ok", func(t *testing.T) {
		gw := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/fetchDealer/17", r.URL.Path)
			w.Write([]byte(`{"id":17,"full_name":"Best Cars"}`))
		})
		ctx, rec := newCtx("/dealers/17")
		ctx.SetParamNames("id")
		ctx.SetParamValues("17")
		require.NoError(t, GetDealerHandler(gw)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"dealer"`)
		require.Contains(t, rec.Body.String(), "Best Cars")
	})
}
