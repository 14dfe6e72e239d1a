package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifier",
		Name:      "notifications_total",
		Help:      "Count of outgoing transfer alerts sent, by channel and outcome.",
	}, []string{"channel", "status"})
	notificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "notifier",
		Name:      "notification_duration_seconds",
		Help:      "Duration of alert deliveries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"channel", "status"})
)

// Notifier tracks alert deliveries for one channel, such as "email".
type Notifier struct {
	channel string
}

// NewNotifier constructs a metrics collector for the given delivery channel.
func NewNotifier(channel string) *Notifier {
	if channel == "" {
		channel = "unknown"
	}
	return &Notifier{channel: channel}
}

// Observe records a single delivery outcome and duration.
func (m Notifier) Observe(err error, started time.Time) {
	status := statusOf(err)

	notificationsTotal.WithLabelValues(m.channel, status).Inc()
	notificationDuration.WithLabelValues(m.channel, status).Observe(time.Since(started).Seconds())
}
