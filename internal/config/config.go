package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Available config variables
const (
	DatabaseURL          = "database.url"
	RedisAddr            = "redis.addr"
	RedisPassword        = "redis.password"
	RedisDB              = "redis.db"
	SessionSecret        = "session.secret"
	DealerGatewayURL     = "gateway.dealer_url"
	SentimentAnalyzerURL = "gateway.sentiment_url"
	HTTPAddr             = "http.addr"
	WorkerCount          = "worker.count"
	UpstreamTimeout      = "gateway.timeout"
)

// Config 保存服務啟動所需的所有設定
type Config struct {
	DatabaseURL          string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	SessionSecret        string
	DealerGatewayURL     string
	SentimentAnalyzerURL string
	HTTPAddr             string
	WorkerCount          int
	UpstreamTimeout      time.Duration
}

// Load 透過 viper 讀取環境變數並回傳設定
// 缺少必要變數時回傳錯誤
func Load() (*Config, error) {
	v := viper.New()

	_ = v.BindEnv(DatabaseURL, "DATABASE_URL")
	_ = v.BindEnv(RedisAddr, "REDIS_ADDR")
	_ = v.BindEnv(RedisPassword, "REDIS_PASSWORD")
	_ = v.BindEnv(RedisDB, "REDIS_DB")
	_ = v.BindEnv(SessionSecret, "SESSION_SECRET")
	_ = v.BindEnv(DealerGatewayURL, "DEALER_GATEWAY_URL")
	_ = v.BindEnv(SentimentAnalyzerURL, "SENTIMENT_ANALYZER_URL")
	_ = v.BindEnv(HTTPAddr, "HTTP_ADDR")
	_ = v.BindEnv(WorkerCount, "WORKER_COUNT")
	_ = v.BindEnv(UpstreamTimeout, "UPSTREAM_TIMEOUT")

	v.SetDefault(RedisDB, 0)
	v.SetDefault(HTTPAddr, ":8080")
	v.SetDefault(WorkerCount, 4)
	v.SetDefault(UpstreamTimeout, "10s")

	v.AutomaticEnv()

	required := map[string]string{
		DatabaseURL:          "DATABASE_URL",
		RedisAddr:            "REDIS_ADDR",
		SessionSecret:        "SESSION_SECRET",
		DealerGatewayURL:     "DEALER_GATEWAY_URL",
		SentimentAnalyzerURL: "SENTIMENT_ANALYZER_URL",
	}
	for key, env := range required {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("環境變數 %s 未設定", env)
		}
	}

	if v.GetInt(WorkerCount) <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v.GetString(WorkerCount))
	}

	timeout := v.GetDuration(UpstreamTimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("無效的 UPSTREAM_TIMEOUT: %q", v.GetString(UpstreamTimeout))
	}

	return &Config{
		DatabaseURL:          v.GetString(DatabaseURL),
		RedisAddr:            v.GetString(RedisAddr),
		RedisPassword:        v.GetString(RedisPassword),
		RedisDB:              v.GetInt(RedisDB),
		SessionSecret:        v.GetString(SessionSecret),
		DealerGatewayURL:     v.GetString(DealerGatewayURL),
		SentimentAnalyzerURL: v.GetString(SentimentAnalyzerURL),
		HTTPAddr:             v.GetString(HTTPAddr),
		WorkerCount:          v.GetInt(WorkerCount),
		UpstreamTimeout:      timeout,
	}, nil
}
