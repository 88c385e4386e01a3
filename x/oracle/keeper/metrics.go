package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	OrdersAdded     *prometheus.CounterVec
	WindowQty       *prometheus.GaugeVec
	ReferencePrice  prometheus.Gauge
	ColdStartExits  prometheus.Counter
	RateSubmissions *prometheus.CounterVec
	ExchangeRate    prometheus.Gauge
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			OrdersAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "orders_added_total",
					Help:      "Total orders added to the pricing window by venue",
				},
				[]string{"venue"},
			),
			WindowQty: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "window_qty",
					Help:      "Current aggregate quantity inside the pricing window",
				},
				[]string{"venue"},
			),
			ReferencePrice: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "reference_price",
					Help:      "Last computed market reference price (6dp fixed-point)",
				},
			),
			ColdStartExits: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "cold_start_exits_total",
					Help:      "Times the cold-start latch flipped to exited",
				},
			),
			RateSubmissions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "rate_submissions_total",
					Help:      "Exchange rate submissions by outcome",
				},
				[]string{"outcome"},
			),
			ExchangeRate: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "arcanum",
					Subsystem: "oracle",
					Name:      "exchange_rate",
					Help:      "Last accepted CNY/USDT exchange rate",
				},
			),
		}
	})
	return oracleMetrics
}

// GetOracleMetrics returns the singleton metrics instance
func GetOracleMetrics() *OracleMetrics {
	return NewOracleMetrics()
}
