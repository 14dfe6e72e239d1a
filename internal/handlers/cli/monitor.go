package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sekadau-online/bitcoin-monitor/internal/monitor"

	"github.com/urfave/cli/v3"
)

// startMonitorCommand returns a CLI command that polls the watched wallet on
// the configured interval.
//
// Usage example:
//
//	bitcoin-monitor start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func startMonitorCommand(mon monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts monitoring the watched wallet for outgoing transactions.",
		Usage:       "Runs detection cycles until Ctrl+C or a termination signal is received.",
		Action:      runMonitor(mon),
	}
}

// runMonitor polls through mon until SIGINT or SIGTERM is received. It backs
// both `start` and the bare `bitcoin-monitor` invocation.
func runMonitor(mon monitor.Service) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return mon.Run(ctx)
	}
}

// checkOnceCommand returns a CLI command that runs exactly one detection cycle.
//
// Usage example:
//
//	bitcoin-monitor check
//
// Fetch and notification failures are logged; the command only fails when the
// cycle itself does.
func checkOnceCommand(mon monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Description: "Runs a single detection cycle against the watched wallet.",
		Usage:       "Fetches recent transactions once, alerts on new outgoing ones and exits.",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := mon.RunOnce(ctx)
			return err
		},
	}
}
