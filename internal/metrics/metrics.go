// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool call outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// ToolCallsTotal counts tool invocations by tool and outcome.
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wanttobe_tool_calls_total",
			Help: "Total number of MCP tool calls",
		},
		[]string{"tool", "outcome"},
	)

	// ToolCallDuration tracks tool handler latency.
	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "wanttobe_tool_call_duration_seconds",
			Help: "Duration of MCP tool calls in seconds",
			// In-memory scans finish in microseconds.
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"tool"},
	)

	// DatasetPeople reports how many persons the loaded dataset holds.
	DatasetPeople = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wanttobe_dataset_people",
			Help: "Number of persons in the loaded dataset",
		},
	)
)

// RecordToolCall records one finished tool call.
func RecordToolCall(tool string, failed bool, elapsed time.Duration) {
	outcome := OutcomeOK
	if failed {
		outcome = OutcomeError
	}
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
