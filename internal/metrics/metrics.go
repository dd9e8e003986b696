// Package metrics Prometheus 指标，统一以 replsite_ 为前缀
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal 按路由模板统计，避免 locale 参数导致的基数膨胀
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replsite_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "replsite_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ResolutionsTotal result 取值 ok / not_found / error
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replsite_locale_resolutions_total",
			Help: "Locale message resolutions by outcome.",
		},
		[]string{"result"},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replsite_messages_cache_hits_total",
			Help: "Merged message cache hits.",
		},
		[]string{"driver"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replsite_messages_cache_misses_total",
			Help: "Merged message cache misses.",
		},
		[]string{"driver"},
	)
)
