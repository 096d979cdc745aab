package sentiment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"dealerhub/internal/metrics"

	"github.com/goccy/go-json"
)

const serviceName = "sentiment-analyzer"

// Analyzer 定義 sentiment 分類操作，handler 依此介面注入
// 分類失敗時呼叫端應視為 sentiment 未知，而非整體操作失敗
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// Client 呼叫外部 sentiment analyzer 服務
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient 建立 sentiment analyzer client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type analyzeResponse struct {
	Sentiment string `json:"sentiment"`
}

// Analyze 將文字送交分類並回傳 sentiment 標籤
// 任何失敗（連線、狀態碼、缺欄位）都回傳錯誤，由呼叫端降級處理
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/analyze/"+url.PathEscape(text), nil)
	if err != nil {
		return "", fmt.Errorf("sentiment: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(serviceName, 0, time.Since(start))
		return "", fmt.Errorf("sentiment: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(serviceName, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sentiment: 回應 %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sentiment: %w", err)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("sentiment: %w", err)
	}
	if parsed.Sentiment == "" {
		return "", fmt.Errorf("sentiment: 回應缺少 sentiment 欄位")
	}
	return parsed.Sentiment, nil
}
