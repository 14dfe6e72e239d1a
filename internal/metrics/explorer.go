// Package metrics holds the Prometheus collectors exposed by the monitor.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bitcoin_monitor"

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "operations_total",
		Help:      "Count of block explorer API operations.",
	}, []string{"operation", "provider", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block explorer API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "status"})
)

// Explorer tracks metrics for calls made to a block explorer API.
type Explorer struct {
	provider string
}

// NewExplorer constructs a metrics collector for the named explorer provider.
func NewExplorer(provider string) *Explorer {
	if provider == "" {
		provider = "unknown"
	}
	return &Explorer{provider: provider}
}

// Observe records a single explorer call outcome and duration.
func (m Explorer) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	explorerRequestsTotal.WithLabelValues(operation, m.provider, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, m.provider, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
