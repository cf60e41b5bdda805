package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-pihole/observability"
)

func TestNoopMetricsRecorder(t *testing.T) {
	t.Parallel()

	recorder := observability.NoopMetricsRecorder()

	// All methods should execute without panicking
	recorder.RecordHTTPRequest("GET", "/stats/summary", 200, 10*time.Millisecond)
	recorder.RecordRetry(1, "/dns/blocking")
	recorder.RecordAuthRefresh(true)
	recorder.RecordError("GetSummary", "timeout")
}

func TestPrometheusRecorder(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	recorder := observability.NewPrometheusRecorder(registry)

	recorder.RecordHTTPRequest("GET", "/stats/summary", 200, 25*time.Millisecond)
	recorder.RecordHTTPRequest("GET", "/stats/summary", 200, 30*time.Millisecond)
	recorder.RecordRetry(1, "/dns/blocking")
	recorder.RecordAuthRefresh(true)
	recorder.RecordAuthRefresh(false)
	recorder.RecordError("GetSummary", "timeout")

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["pihole_client_http_requests_total"])
	assert.True(t, names["pihole_client_http_request_duration_seconds"])
	assert.True(t, names["pihole_client_retries_total"])
	assert.True(t, names["pihole_client_auth_refresh_total"])
	assert.True(t, names["pihole_client_errors_total"])

	for _, family := range families {
		if family.GetName() != "pihole_client_http_requests_total" {
			continue
		}
		require.Len(t, family.GetMetric(), 1)
		assert.InEpsilon(t, 2.0, family.GetMetric()[0].GetCounter().GetValue(), 0.001)
	}
}
