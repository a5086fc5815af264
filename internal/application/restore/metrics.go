package restore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intentsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_restore_intents_registered_total",
		Help: "Restore intents registered",
	})

	// intentsResolved counts intents leaving the registry by outcome
	// (finalized, failed, cancelled, stale).
	intentsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_restore_intents_resolved_total",
		Help: "Restore intents removed from the registry by outcome",
	}, []string{"outcome"})

	claimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_restore_claims_total",
		Help: "Window claim attempts by result",
	}, []string{"result"})

	pendingIntents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spacesync_restore_intents_pending",
		Help: "Restore intents waiting for a window",
	})
)
