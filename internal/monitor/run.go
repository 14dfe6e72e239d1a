package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/logger"
	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"
)

// nextSleep returns how long to wait after a cycle that took elapsed so that
// cycles start roughly every interval, never less than one second apart.
func nextSleep(interval, elapsed time.Duration) time.Duration {
	return max(minSleep, interval-elapsed)
}

// cycle runs one detection pass, converting a panic into ErrCyclePanicked.
func (s *service) cycle(ctx context.Context) (report walletwatch.CycleReport, err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCyclePanicked, r)
		}
		s.metrics.ObserveCycle(err, report.Checked, report.Detected, s.alerted.Len(), started)
	}()

	return s.walletwatch.CheckTransactions(ctx, s.alerted)
}

// RunOnce performs a single detection cycle.
func (s *service) RunOnce(ctx context.Context) (walletwatch.CycleReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cycle(ctx)
}

// Run loops over detection cycles until ctx is cancelled.
func (s *service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return ErrServiceAlreadyRunning
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	logger.Info(ctx, "monitoring started",
		"wallet.address", s.walletwatch.Wallet(),
		"monitor.interval", s.interval.String(),
	)

	for {
		started := s.now()

		s.mu.Lock()
		report, err := s.cycle(ctx)
		s.mu.Unlock()

		if err != nil && ctx.Err() == nil {
			logger.Error(ctx, "error checking transactions",
				"cycle.id", report.CycleID,
				"error", err,
			)
		}

		if ctx.Err() != nil {
			break
		}

		wait := nextSleep(s.interval, s.now().Sub(started))
		logger.Debug(ctx, "waiting for next cycle", "monitor.sleep", wait.String())

		if err := s.sleep(ctx, wait); err != nil {
			break
		}
	}

	logger.Info(ctx, "monitoring stopped", "monitor.alerted", s.alerted.Len())
	return nil
}
