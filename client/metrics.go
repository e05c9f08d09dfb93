package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "channelgate_client",
			Name:      "requests_total",
			Help:      "Backend requests by method and HTTP status (\"error\" when no response arrived).",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "channelgate_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of backend requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	sessionExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "channelgate_client",
			Name:      "session_expired_total",
			Help:      "401 responses that ended the session.",
		},
	)
)

func observeRequest(method string, code int, elapsed time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	requestsTotal.WithLabelValues(method, label).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
