package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestExplorerRecords(t *testing.T) {
	m := NewExplorer("")
	start := time.Now().Add(-time.Second)

	t.Run("should count successes under the unknown provider", func(t *testing.T) {
		inc := delta(t, explorerRequestsTotal.WithLabelValues("rawaddr", "unknown", "success"), func() {
			m.Observe("rawaddr", nil, start)
		})
		assert.Equal(t, float64(1), inc)
	})

	t.Run("should count errors separately", func(t *testing.T) {
		m := NewExplorer("blockchain.info")

		inc := delta(t, explorerRequestsTotal.WithLabelValues("rawaddr", "blockchain.info", "error"), func() {
			m.Observe("rawaddr", errors.New("boom"), start)
		})
		assert.Equal(t, float64(1), inc)
	})
}

func TestNotifierRecords(t *testing.T) {
	m := NewNotifier("email")
	start := time.Now().Add(-200 * time.Millisecond)

	inc := delta(t, notificationsTotal.WithLabelValues("email", "error"), func() {
		m.Observe(errors.New("535 authentication failed"), start)
	})
	assert.Equal(t, float64(1), inc)

	inc = delta(t, notificationsTotal.WithLabelValues("email", "success"), func() {
		m.Observe(nil, start)
	})
	assert.Equal(t, float64(1), inc)
}

func TestMonitorRecords(t *testing.T) {
	m := NewMonitor()
	start := time.Now().Add(-50 * time.Millisecond)

	t.Run("should count cycles and transactions", func(t *testing.T) {
		inc := delta(t, cyclesTotal.WithLabelValues("success"), func() {
			m.ObserveCycle(nil, 0, 0, 0, start)
		})
		assert.Equal(t, float64(1), inc)

		inc = delta(t, transactionsChecked, func() {
			m.ObserveCycle(nil, 50, 2, 2, start)
		})
		assert.Equal(t, float64(50), inc)
		assert.Equal(t, float64(2), testutil.ToFloat64(alertedTransactions))
	})

	t.Run("should count failed cycles", func(t *testing.T) {
		inc := delta(t, cyclesTotal.WithLabelValues("error"), func() {
			m.ObserveCycle(errors.New("panic"), 0, 0, 2, start)
		})
		assert.Equal(t, float64(1), inc)
	})
}
