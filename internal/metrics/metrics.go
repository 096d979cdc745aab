package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 外部服務呼叫指標，service 標籤區分 dealer gateway 與 sentiment analyzer
var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealerhub_upstream_requests_total",
			Help: "Total number of outbound requests, by upstream service and status code.",
		},
		[]string{"service", "code"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dealerhub_upstream_request_duration_seconds",
			Help:    "Latency of outbound requests, by upstream service.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
)

// ObserveUpstream 記錄一次外部呼叫；code 為 0 表示連線層錯誤
func ObserveUpstream(service string, code int, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(service, strconv.Itoa(code)).Inc()
	upstreamDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}
