package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// prometheusRecorder implements MetricsRecorder on top of prometheus collectors.
type prometheusRecorder struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	retries      *prometheus.CounterVec
	authRefresh  *prometheus.CounterVec
	errorsByKind *prometheus.CounterVec
}

// NewPrometheusRecorder returns a MetricsRecorder that registers its collectors
// with the given registerer. Pass nil to use the default registry.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NewPrometheusRecorder(reg prometheus.Registerer) MetricsRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &prometheusRecorder{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pihole_client",
				Name:      "http_requests_total",
				Help:      "HTTP attempts issued by the client, by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pihole_client",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP attempt latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pihole_client",
				Name:      "retries_total",
				Help:      "Retry attempts, by endpoint.",
			},
			[]string{"endpoint"},
		),
		authRefresh: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pihole_client",
				Name:      "auth_refresh_total",
				Help:      "Session authentication attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		errorsByKind: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pihole_client",
				Name:      "errors_total",
				Help:      "Classified errors, by operation and taxonomy kind.",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (r *prometheusRecorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	r.requests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	r.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (r *prometheusRecorder) RecordRetry(_ int, endpoint string) {
	r.retries.WithLabelValues(endpoint).Inc()
}

func (r *prometheusRecorder) RecordAuthRefresh(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	r.authRefresh.WithLabelValues(outcome).Inc()
}

func (r *prometheusRecorder) RecordError(operation, errorKind string) {
	r.errorsByKind.WithLabelValues(operation, errorKind).Inc()
}
