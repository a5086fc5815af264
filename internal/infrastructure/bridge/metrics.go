package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacesync_bridge_requests_total",
		Help: "Bridge HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spacesync_bridge_request_duration_seconds",
		Help:    "Bridge HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	streamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spacesync_bridge_stream_clients",
		Help: "Connected WebSocket update streams.",
	})

	streamMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spacesync_bridge_stream_messages_total",
		Help: "Updates written to WebSocket streams.",
	})
)
