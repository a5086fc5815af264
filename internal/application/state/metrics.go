package state

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_state_operations_total",
		Help: "State manager operations by name and result",
	}, []string{"op", "result"})

	lockWaits = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spacesync_state_lock_wait_seconds",
		Help:    "Time spent waiting for per-space locks",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"result"})

	spacesGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spacesync_spaces",
		Help: "Spaces held in memory by state",
	}, []string{"state"})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_state_publish_failures_total",
		Help: "Updates persisted but not handed to observers",
	})

	syncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spacesync_sync_duration_seconds",
		Help:    "Duration of window/space reconciliation passes",
		Buckets: prometheus.DefBuckets,
	})
)

// observe records an operation outcome.
func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = errorKind(err)
	}
	operationsTotal.WithLabelValues(op, result).Inc()
}
