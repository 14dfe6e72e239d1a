package monitor

import "time"

// config holds optional settings for the monitor.
type config struct {
	interval time.Duration
	now      func() time.Time
	sleep    sleepFunc
	metrics  Metrics
}

// Option customizes the monitor.
type Option func(*config)

// WithInterval sets the target period between cycle starts. Values below one
// second are ignored.
//
// Default: 300 seconds.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d >= minSleep {
			c.interval = d
		}
	}
}

// WithMetrics records every cycle on m.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// withClock replaces the time source and the sleep function.
func withClock(now func() time.Time, sleep sleepFunc) Option {
	return func(c *config) {
		c.now = now
		c.sleep = sleep
	}
}
