package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"dealerhub/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
)

const serviceName = "dealer-gateway"

// Client 負責呼叫外部 dealer service
// 所有請求共用帶有 timeout 的 http.Client 與 circuit breaker
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewClient 建立 dealer service client
// baseURL 不含結尾斜線；timeout 為單次請求上限
func NewClient(baseURL string, timeout time.Duration) *Client {
	settings := gobreaker.Settings{
		Name: serviceName,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// do 經由 circuit breaker 發出請求並回傳回應本文
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("gateway: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			metrics.ObserveUpstream(serviceName, 0, time.Since(start))
			return nil, fmt.Errorf("gateway: %w", err)
		}
		defer resp.Body.Close()
		metrics.ObserveUpstream(serviceName, resp.StatusCode, time.Since(start))

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gateway: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("gateway: %s %s 回應 %d", method, path, resp.StatusCode)
		}
		return payload, nil
	})
}

// ListDealers 取回所有經銷商
func (c *Client) ListDealers(ctx context.Context) ([]Dealer, error) {
	payload, err := c.do(ctx, http.MethodGet, "/fetchDealers", nil)
	if err != nil {
		return nil, err
	}
	var dealers []Dealer
	if err := json.Unmarshal(payload, &dealers); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return dealers, nil
}

// ListDealersByState 取回指定州別的經銷商
func (c *Client) ListDealersByState(ctx context.Context, state string) ([]Dealer, error) {
	payload, err := c.do(ctx, http.MethodGet, "/fetchDealers/"+url.PathEscape(state), nil)
	if err != nil {
		return nil, err
	}
	var dealers []Dealer
	if err := json.Unmarshal(payload, &dealers); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return dealers, nil
}

// GetDealer 取回單一經銷商
func (c *Client) GetDealer(ctx context.Context, dealerID int) (*Dealer, error) {
	payload, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/fetchDealer/%d", dealerID), nil)
	if err != nil {
		return nil, err
	}
	dealer := &Dealer{}
	if err := json.Unmarshal(payload, dealer); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return dealer, nil
}

// ListReviews 取回指定經銷商的所有評論
func (c *Client) ListReviews(ctx context.Context, dealerID int) ([]Review, error) {
	payload, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/fetchReviews/dealer/%d", dealerID), nil)
	if err != nil {
		return nil, err
	}
	var reviews []Review
	if err := json.Unmarshal(payload, &reviews); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return reviews, nil
}

// PostReview 將評論原封不動轉送至 dealer service
func (c *Client) PostReview(ctx context.Context, payload json.RawMessage) error {
	_, err := c.do(ctx, http.MethodPost, "/insert_review", payload)
	return err
}
