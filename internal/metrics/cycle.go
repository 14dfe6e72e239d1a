package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "cycles_total",
		Help:      "Count of detection cycles, by outcome.",
	}, []string{"status"})
	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of detection cycles.",
		Buckets:   prometheus.DefBuckets,
	})
	transactionsChecked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "transactions_checked_total",
		Help:      "Transactions examined across all cycles.",
	})
	outgoingDetected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "outgoing_detected_total",
		Help:      "Outgoing transfers detected and not yet alerted at detection time.",
	})
	alertedTransactions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "monitor",
		Name:      "alerted_transactions",
		Help:      "Transactions alerted on since the process started.",
	})
)

// Monitor tracks the outcome of detection cycles.
type Monitor struct{}

// NewMonitor constructs a metrics collector for detection cycles.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// ObserveCycle records one finished cycle. err is the cycle failure, if any;
// checked and detected are the transactions examined and the outgoing
// transfers found, and alerted is the size of the alerted set afterwards.
func (Monitor) ObserveCycle(err error, checked, detected, alerted int, started time.Time) {
	cyclesTotal.WithLabelValues(statusOf(err)).Inc()
	cycleDuration.Observe(time.Since(started).Seconds())
	transactionsChecked.Add(float64(checked))
	outgoingDetected.Add(float64(detected))
	alertedTransactions.Set(float64(alerted))
}
