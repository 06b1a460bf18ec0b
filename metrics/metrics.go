package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "coingecko_client_"

var (
	// Global Coingecko request counter (all clients)
	// Cardinality: ~5 (success, error, rate_limited, timeout, etc.)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API",
		},
		[]string{"status"},
	)

	// Per-client request counter, labelled by retry policy key
	// Cardinality: ~10 (2 clients x 5 statuses)
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "client_requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API per client",
		},
		[]string{"client", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~2 (number of clients)
	RetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retry_attempts_total",
			Help: "Total number of retry attempts per client",
		},
		[]string{"client"},
	)

	// Request latency per client
	// Cardinality: ~2 (number of clients)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by client",
		},
		[]string{"client"},
	)

	// Response cache outcomes
	// Cardinality: 2 (hit, miss)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_requests_total",
			Help: "Response cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// MetricsWriter provides a unified interface for recording client metrics
type MetricsWriter struct {
	clientName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified client
func NewMetricsWriter(clientName string) *MetricsWriter {
	return &MetricsWriter{
		clientName: clientName,
	}
}

// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(status).Inc()
	ClientRequestsTotal.WithLabelValues(mw.clientName, status).Inc()
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	RetryCounter.WithLabelValues(mw.clientName).Inc()
}

// RecordRequestDuration records the latency of a completed request
func (mw *MetricsWriter) RecordRequestDuration(duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.clientName).Observe(duration.Seconds())
}

// RecordCacheHit records a response served from cache
func RecordCacheHit() {
	CacheRequestsTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a cache miss that triggered a live fetch
func RecordCacheMiss() {
	CacheRequestsTotal.WithLabelValues("miss").Inc()
}
