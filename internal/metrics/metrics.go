// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger operations by outcome",
		},
		[]string{"operation", "status"},
	)

	LedgerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Duration of ledger operations",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2},
		},
		[]string{"operation"},
	)

	MaturityRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maturity_settlements_total",
			Help: "Total number of matured investments handled by the worker",
		},
		[]string{"status"},
	)
)

// Observe records one finished ledger operation.
func Observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	LedgerOperations.WithLabelValues(operation, status).Inc()
	LedgerDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
