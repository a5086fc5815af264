package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_updates_enqueued_total",
		Help: "State updates submitted to the queue",
	}, []string{"type", "priority"})

	// dispatchedTotal splits by mode: immediate (bypass) or coalesced.
	dispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_updates_dispatched_total",
		Help: "State updates handed to the broadcaster",
	}, []string{"mode"})

	coalescedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_updates_coalesced_total",
		Help: "Pending updates replaced by a newer update with the same key",
	})

	pendingGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spacesync_updates_pending",
		Help: "Updates held in the debounce window",
	})

	observersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spacesync_broadcast_observers",
		Help: "Registered observers",
	})

	deliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_broadcast_delivered_total",
		Help: "Updates fanned out to observers",
	}, []string{"type"})

	broadcastErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_broadcast_observer_errors_total",
		Help: "Observer notifications that failed or timed out",
	})

	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_broadcast_dropped_total",
		Help: "Updates dropped for lagging channel subscribers",
	})
)
