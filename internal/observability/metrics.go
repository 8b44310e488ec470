package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	clientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrforge",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total pipeline call attempts.",
		},
		[]string{"path", "method", "outcome"},
	)
	clientDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chrforge",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Pipeline call attempt duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "outcome"},
	)
	refreshRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrforge",
			Subsystem: "client",
			Name:      "refresh_retries_total",
			Help:      "Refresh retries triggered by expired-token errors.",
		},
		[]string{"path"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrforge",
			Subsystem: "client",
			Name:      "decode_failures_total",
			Help:      "Responses rejected by the codec.",
		},
		[]string{"path"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chrforge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chrforge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			clientRequests, clientDuration,
			refreshRetries, decodeFailures,
			httpRequests, httpDuration,
		)
	})
}

func RecordClientRequest(path, method, outcome string, duration time.Duration) {
	RegisterMetrics()
	clientRequests.WithLabelValues(path, method, outcome).Inc()
	clientDuration.WithLabelValues(path, method, outcome).Observe(duration.Seconds())
}

func RecordRefreshRetry(path string) {
	RegisterMetrics()
	refreshRetries.WithLabelValues(path).Inc()
}

func RecordDecodeFailure(path string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(path).Inc()
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}
