package walletwatch

import (
	"context"
	"errors"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/logger"
	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNotifierAuthentication is wrapped by TransactionNotifier implementations
// when the delivery channel rejected the configured credentials.
var ErrNotifierAuthentication = errors.New("notifier authentication failed")

// TransactionFetcher retrieves the most recent transactions of a wallet.
type TransactionFetcher interface {
	// FetchTransactions returns the latest transactions involving address,
	// newest first, as reported by the upstream source. Any network, status
	// or decoding failure is returned as an error.
	FetchTransactions(ctx context.Context, address string) ([]Transaction, error)
}

// TransactionNotifier delivers an alert about an outgoing transfer.
type TransactionNotifier interface {
	// NotifyOutgoingTransfer sends one alert for transfer. Credential
	// rejections wrap ErrNotifierAuthentication.
	NotifyOutgoingTransfer(ctx context.Context, transfer OutgoingTransfer) error
}

// fetchTransactions asks the fetcher for the wallet transactions. A failure is
// logged and converted to an empty result so the cycle can finish normally.
func (s *service) fetchTransactions(ctx context.Context) ([]Transaction, error) {
	logger.Info(ctx, "requesting wallet transactions", "wallet.address", s.wallet)

	txs, err := s.transactionFetcher.FetchTransactions(ctx, s.wallet)
	if err != nil {
		logger.Error(ctx, "error fetching wallet transactions",
			"wallet.address", s.wallet,
			"error", err,
		)
		return nil, err
	}

	logger.Info(ctx, "wallet transactions received", "tx.count", len(txs))
	return txs, nil
}

// notifyTransfer delivers the alert for transfer and records it in alerted
// only when delivery succeeded.
func (s *service) notifyTransfer(ctx context.Context, transfer OutgoingTransfer, alerted *AlertedSet) error {
	if err := s.transactionNotifier.NotifyOutgoingTransfer(ctx, transfer); err != nil {
		if errors.Is(err, ErrNotifierAuthentication) {
			logger.Error(ctx, "notifier rejected credentials",
				"tx.hash", transfer.Hash,
				"error", err,
			)
		} else {
			logger.Error(ctx, "error sending outgoing transfer alert",
				"tx.hash", transfer.Hash,
				"error", err,
			)
		}
		return err
	}

	alerted.Add(transfer.Hash)
	logger.Info(ctx, "outgoing transfer alert sent", "tx.hash", transfer.Hash)
	return nil
}

// CheckTransactions runs one detection cycle. See Service for the contract.
func (s *service) CheckTransactions(ctx context.Context, alerted *AlertedSet) (CycleReport, error) {
	report := CycleReport{
		CycleID: uuid.Must(uuid.NewV7()).String(),
	}

	ctx, span := telemetry.Tracer().Start(ctx, "walletwatch.CheckTransactions")
	defer span.End()

	ctx = logger.Derive(ctx, "cycle.id", report.CycleID)

	txs, err := s.fetchTransactions(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}
		report.FetchErr = err
		span.RecordError(err)
	}

	report.Checked = len(txs)

	for _, tx := range txs {
		transfer, ok := classify(tx, s.wallet, alerted)
		if !ok {
			continue
		}

		report.Detected++
		logger.Warn(ctx, "outgoing transaction detected",
			"tx.hash", transfer.Hash,
			"tx.amount_btc", transfer.Amount.ToBTC(),
			"tx.confirmations", transfer.Confirmations,
		)

		if err := s.notifyTransfer(ctx, transfer, alerted); err != nil {
			report.FailedNotifications++
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			continue
		}

		report.NewAlerts++
	}

	span.SetAttributes(
		attribute.Int("cycle.checked", report.Checked),
		attribute.Int("cycle.new_alerts", report.NewAlerts),
	)
	if report.FetchErr != nil || report.FailedNotifications > 0 {
		span.SetStatus(codes.Error, "cycle finished with failures")
	}

	logger.Info(ctx, "wallet transactions checked",
		"cycle.checked", report.Checked,
		"cycle.new_alerts", report.NewAlerts,
		"cycle.failed_alerts", report.FailedNotifications,
	)

	return report, nil
}
