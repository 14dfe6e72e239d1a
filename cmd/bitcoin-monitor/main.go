package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/config"
	"github.com/sekadau-online/bitcoin-monitor/internal/handlers/cli"
	"github.com/sekadau-online/bitcoin-monitor/internal/infra/explorer/blockchaininfo"
	"github.com/sekadau-online/bitcoin-monitor/internal/infra/notify/email"
	"github.com/sekadau-online/bitcoin-monitor/internal/metrics"
	"github.com/sekadau-online/bitcoin-monitor/internal/monitor"
	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/logger"
	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/telemetry"
	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		// The configured level is unknown here; report at the default one.
		if logErr := logger.Init("info"); logErr == nil {
			logger.Error(ctx, "invalid configuration", "error", err)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info(ctx, "starting bitcoin monitor",
		"wallet.address", cfg.WatchedAddress,
		"monitor.interval_seconds", cfg.CheckIntervalSeconds,
		"explorer.api", cfg.ExplorerAPIURL,
	)

	if _, err := cfg.DecodeWatchedAddress(); err != nil {
		logger.Warn(ctx, "watched address is not a valid mainnet address",
			"wallet.address", cfg.WatchedAddress,
			"error", err,
		)
	}

	if cfg.MetricsAddr != "" {
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		startMetricsServer(metricsCtx, cfg.MetricsAddr)
	}

	fetcher := blockchaininfo.NewClient(cfg.ExplorerAPIURL,
		blockchaininfo.WithMetrics(metrics.NewExplorer("blockchain.info")),
	)

	notifier := email.New(email.Config{
		Host:     cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
		To:       cfg.EmailTo,
		TxURL:    cfg.ExplorerTxURL,
	}, email.WithMetrics(metrics.NewNotifier("email")))

	mon := monitor.New(
		walletwatch.New(cfg.WatchedAddress, fetcher, notifier),
		monitor.WithInterval(cfg.CheckInterval()),
		monitor.WithMetrics(metrics.NewMonitor()),
	)

	return cli.Run(ctx, mon)
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info(ctx, "starting metrics server", "metrics.addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "failed to shutdown metrics server", "error", err)
		}
	}()
}
