package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ComputeMetrics holds the Prometheus metrics for the compute module
type ComputeMetrics struct {
	RequestsSubmitted *prometheus.CounterVec
	RequestsAssigned  *prometheus.CounterVec
	RequestsCompleted *prometheus.CounterVec
	InvalidSignatures *prometheus.CounterVec
	Failovers         prometheus.Counter
	Timeouts          prometheus.Counter
	QueueSize         prometheus.Gauge
}

var (
	computeMetricsOnce sync.Once
	computeMetrics     *ComputeMetrics
)

// NewComputeMetrics creates and registers compute metrics (singleton pattern)
func NewComputeMetrics() *ComputeMetrics {
	computeMetricsOnce.Do(func() {
		computeMetrics = &ComputeMetrics{
			RequestsSubmitted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "requests_submitted_total",
					Help:      "Total compute requests submitted",
				},
				[]string{"compute_type"},
			),
			RequestsAssigned: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "requests_assigned_total",
					Help:      "Total requests assigned to nodes",
				},
				[]string{"node"},
			),
			RequestsCompleted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "requests_completed_total",
					Help:      "Total requests completed with a verified result",
				},
				[]string{"node"},
			),
			InvalidSignatures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "invalid_signatures_total",
					Help:      "Result submissions rejected for bad signatures",
				},
				[]string{"node"},
			),
			Failovers: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "failovers_total",
					Help:      "Requests requeued after a node timeout",
				},
			),
			Timeouts: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "timeouts_total",
					Help:      "Requests terminated after exhausting failovers",
				},
			),
			QueueSize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "arcanum",
					Subsystem: "compute",
					Name:      "pending_queue_size",
					Help:      "Current number of queued requests",
				},
			),
		}
	})
	return computeMetrics
}

// GetComputeMetrics returns the singleton compute metrics instance
func GetComputeMetrics() *ComputeMetrics {
	if computeMetrics == nil {
		return NewComputeMetrics()
	}
	return computeMetrics
}
