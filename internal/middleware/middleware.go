// Package middleware provides reusable HTTP round-tripper components for the
// Pi-hole client's transport stack.
package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/lexfrei/go-pihole/observability"
)

// Observability returns a middleware that logs and records metrics for every
// HTTP attempt crossing the wire, including attempts the retry layer repeats.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	path := req.URL.Path

	t.logger.Debug("http attempt started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "path", Value: path},
	)

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	normalized := NormalizePath(path)
	if err != nil {
		t.logger.Error("http attempt failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "path", Value: path},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)
		t.metrics.RecordHTTPRequest(req.Method, normalized, 0, duration)

		//nolint:wrapcheck // Observability middleware logs the error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "path", Value: path},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}
	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http attempt completed with error", fields...)
	} else {
		t.logger.Debug("http attempt completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, normalized, resp.StatusCode, duration)

	return resp, nil
}

// Pi-hole paths embed user data as the final segment: domains, group and
// client names, lease IPs. Collapsing them keeps metric cardinality bounded.
var (
	domainPathPattern = regexp.MustCompile(`^(/api)?/domains/(allow|deny)/(exact|regex)/.+$`)
	resourcePattern   = regexp.MustCompile(`^((?:/api)?/(?:groups|clients|lists))/[^/]+$`)
	leasePattern      = regexp.MustCompile(`^((?:/api)?/dhcp/leases)/[^/]+$`)

	// normalizedPathCache avoids repeated regex passes; clients hit a small,
	// stable set of endpoints in practice.
	normalizedPathCache sync.Map
)

// NormalizePath replaces dynamic trailing segments (domains, names, lease
// IPs) with placeholders so metric labels stay bounded.
func NormalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings
		return cached.(string)
	}

	normalized := path
	switch {
	case domainPathPattern.MatchString(path):
		normalized = domainPathPattern.ReplaceAllString(path, "$1/domains/$2/$3/:domain")
	case resourcePattern.MatchString(path):
		normalized = resourcePattern.ReplaceAllString(path, "$1/:name")
	case leasePattern.MatchString(path):
		normalized = leasePattern.ReplaceAllString(path, "$1/:ip")
	}

	normalizedPathCache.Store(path, normalized)
	return normalized
}
