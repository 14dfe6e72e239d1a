package cli

import (
	"context"
	"os"

	"github.com/sekadau-online/bitcoin-monitor/internal/monitor"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the bitcoin-monitor CLI application.
//
// It registers all available commands:
//
//   - `start`: Polls the watched wallet until interrupted.
//   - `check`: Runs a single detection cycle and exits.
//
// Without a command it behaves like `start`.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - mon: The monitor service driving the detection cycles.
func Run(ctx context.Context, mon monitor.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "bitcoin-monitor",
		Description:           "Watches a Bitcoin address and e-mails an alert for every outgoing transaction.",
		Usage:                 "bitcoin-monitor [command] [flags]",
		Action:                runMonitor(mon),
		Commands: []*cli.Command{
			startMonitorCommand(mon),
			checkOnceCommand(mon),
		},
	}

	return app.Run(ctx, os.Args)
}
