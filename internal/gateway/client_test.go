package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestListDealers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fetchDealers", r.URL.Path)
		w.Write([]byte(`[{"id":1,"city":"Topeka","state":"Kansas"},{"id":2,"city":"El Paso","state":"Texas"}]`))
	})
	dealers, err := c.ListDealers(context.Background())
	require.NoError(t, err)
	require.Len(t, dealers, 2)
	require.Equal(t, "Topeka", dealers[0].City)
}

func TestListDealersByState(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fetchDealers/Kansas", r.URL.Path)
		w.Write([]byte(`[{"id":1,"state":"Kansas"}]`))
	})
	dealers, err := c.ListDealersByState(context.Background(), "Kansas")
	require.NoError(t, err)
	require.Len(t, dealers, 1)
	require.Equal(t, "Kansas", dealers[0].State)
}

func TestGetDealer(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/fetchDealer/17", r.URL.Path)
			w.Write([]byte(`{"id":17,"full_name":"Best Cars","lat":34.1}`))
		})
		dealer, err := c.GetDealer(context.Background(), 17)
		require.NoError(t, err)
		require.Equal(t, 17, dealer.ID)
		require.Equal(t, "Best Cars", dealer.FullName)
		// 未知欄位保留在 Extra 中
		require.Contains(t, dealer.Extra, "lat")
	})

	t.Run("upstream error status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.GetDealer(context.Background(), 17)
		require.Error(t, err)
	})
}

func TestListReviews(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fetchReviews/dealer/5", r.URL.Path)
		w.Write([]byte(`[{"id":1,"dealership":5,"review":"Great service","name":"Alice"}]`))
	})
	reviews, err := c.ListReviews(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, "Great service", reviews[0].Review)
	require.Nil(t, reviews[0].Sentiment)
}

func TestPostReview(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var gotBody map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/insert_review", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"id":10}`))
		})
		err := c.PostReview(context.Background(), []byte(`{"dealership":5,"review":"Great service","name":"Alice"}`))
		require.NoError(t, err)
		require.Equal(t, "Alice", gotBody["name"])
	})

	t.Run("upstream rejection", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		err := c.PostReview(context.Background(), []byte(`{}`))
		require.Error(t, err)
	})
}

func TestCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	for i := 0; i < 10; i++ {
		_, err := c.ListDealers(context.Background())
		require.Error(t, err)
	}
	// 連續失敗後 breaker 打開，不再打到 upstream
	require.Less(t, calls, 10)
}
