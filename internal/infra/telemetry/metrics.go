// Package telemetry provides request metrics for the Port adapter and
// an optional HTTP listener exposing them.
package telemetry

import "time"

// Metrics observes upstream requests, tool calls and token refreshes.
type Metrics interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
	ObserveToolCall(tool, outcome string, elapsed time.Duration)
	ObserveTokenRefresh(err error)
}

type NoopMetrics struct{}

func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) ObserveRequest(_ string, _ int, _ time.Duration) {}

func (n *NoopMetrics) ObserveToolCall(_, _ string, _ time.Duration) {}

func (n *NoopMetrics) ObserveTokenRefresh(_ error) {}

var _ Metrics = (*NoopMetrics)(nil)
