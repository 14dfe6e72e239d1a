// Package walletwatch detects outgoing transfers from a watched Bitcoin
// address and notifies about each one exactly once per process lifetime.
package walletwatch

import "context"

// Service runs detection cycles for a single watched wallet.
type Service interface {
	// CheckTransactions fetches the latest transactions of the watched wallet,
	// notifies about every outgoing transfer not yet present in alerted, and
	// adds each successfully notified hash to alerted. A nil alerted set is
	// treated as empty and records nothing.
	//
	// Fetch and notification failures are logged and reflected in the returned
	// CycleReport; they never produce an error. The error is non-nil only when
	// ctx ends before the cycle completes.
	CheckTransactions(ctx context.Context, alerted *AlertedSet) (CycleReport, error)

	// Wallet returns the watched address.
	Wallet() string
}

// service is the default Service implementation.
type service struct {
	wallet              string              // watched address
	transactionFetcher  TransactionFetcher  // source of wallet transactions
	transactionNotifier TransactionNotifier // alert delivery
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a Service watching wallet, reading transactions from f and
// delivering alerts through n.
func New(wallet string, f TransactionFetcher, n TransactionNotifier) *service {
	return &service{
		wallet:              wallet,
		transactionFetcher:  f,
		transactionNotifier: n,
	}
}

// Wallet returns the watched address.
func (s *service) Wallet() string {
	return s.wallet
}
