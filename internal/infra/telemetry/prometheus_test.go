package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusMetrics(t *testing.T) {
	m := NewPrometheusMetrics(prometheus.NewRegistry())
	assert.NotNil(t, m)
	assert.NotNil(t, m.requestDuration)
	assert.NotNil(t, m.toolCalls)
	assert.NotNil(t, m.toolDuration)
	assert.NotNil(t, m.tokenRefreshes)
}

func TestPrometheusMetricsUsesProvidedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewPrometheusMetrics(registry)
	m.ObserveRequest("/entities", 200, 10*time.Millisecond)
	m.ObserveToolCall("get_entities", "ok", 15*time.Millisecond)
	m.ObserveToolCall("get_entities", "error", 5*time.Millisecond)
	m.ObserveTokenRefresh(nil)
	m.ObserveTokenRefresh(errors.New("boom"))

	metrics, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(metrics))
	for _, mf := range metrics {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "portmcp_upstream_request_duration_seconds")
	assert.Contains(t, names, "portmcp_tool_calls_total")
	assert.Contains(t, names, "portmcp_tool_call_duration_seconds")
	assert.Contains(t, names, "portmcp_token_refreshes_total")
}
