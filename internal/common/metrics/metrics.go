// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolInvocationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_completed_total",
			Help: "Total number of tool invocations completed",
		},
		[]string{"tool"},
	)

	ToolInvocationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_rejected_total",
			Help: "Total number of tool invocations rejected before dispatch",
		},
		[]string{"tool", "error_code"},
	)

	ToolInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tool_invocation_duration_seconds",
			Help: "Duration of tool invocations in seconds",
		},
		[]string{"tool"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_response_cache_hits_total",
			Help: "Number of invocations served from the response cache",
		},
		[]string{"tool"},
	)
)
