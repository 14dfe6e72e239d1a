// Package monitor drives the periodic detection cycles of a walletwatch
// service and owns the set of transactions already alerted on.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/clock"
	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"
)

var (
	// ErrServiceAlreadyRunning is returned if Run is called while a previous
	// call is still active.
	ErrServiceAlreadyRunning = errors.New("monitor already running")

	// ErrCyclePanicked wraps a panic recovered from a detection cycle.
	ErrCyclePanicked = errors.New("detection cycle panicked")
)

// DefaultInterval is the target period between cycle starts.
const DefaultInterval = 300 * time.Second

// minSleep is the shortest pause between two cycles.
const minSleep = time.Second

// Service runs detection cycles against a single watched wallet.
type Service interface {
	// Run performs a cycle, sleeps for the remainder of the interval and
	// repeats until ctx is cancelled. A failed or panicking cycle is logged
	// and the loop continues. Run returns nil once ctx ends.
	//
	// Returns ErrServiceAlreadyRunning if another Run is in progress.
	Run(ctx context.Context) error

	// RunOnce performs a single detection cycle and returns its report.
	RunOnce(ctx context.Context) (walletwatch.CycleReport, error)
}

// Metrics records the outcome of every cycle.
type Metrics interface {
	ObserveCycle(err error, checked, detected, alerted int, started time.Time)
}

type nopMetrics struct{}

func (nopMetrics) ObserveCycle(error, int, int, int, time.Time) {}

// sleepFunc pauses for d or until ctx ends.
type sleepFunc func(ctx context.Context, d time.Duration) error

// service is the default Service implementation.
type service struct {
	mu        sync.Mutex // protects isRunning and serializes cycles
	isRunning bool       // set for the duration of Run

	walletwatch walletwatch.Service     // detection workflow
	alerted     *walletwatch.AlertedSet // hashes already notified on
	interval    time.Duration           // target period between cycle starts
	now         func() time.Time        // clock used to measure cycles
	sleep       sleepFunc               // pause between cycles
	metrics     Metrics                 // cycle instrumentation
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a monitor around w. The alerted set starts empty and lives as
// long as the returned service.
func New(w walletwatch.Service, opts ...Option) *service {
	cfg := config{
		interval: DefaultInterval,
		now:      time.Now,
		sleep:    clock.SleepWithContext,
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		walletwatch: w,
		alerted:     walletwatch.NewAlertedSet(),
		interval:    cfg.interval,
		now:         cfg.now,
		sleep:       cfg.sleep,
		metrics:     cfg.metrics,
	}
}
