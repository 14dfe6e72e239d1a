package walletwatch

import "github.com/sekadau-online/bitcoin-monitor/internal/pkg/types"

// AlertedSet records the hashes of transactions whose alert was delivered.
//
// A hash is added only after its notification succeeded, so a failed alert is
// attempted again on the next cycle that still returns the transaction. The
// set lives in memory for the lifetime of its owner and is not safe for
// concurrent use.
type AlertedSet struct {
	hashes types.Set[string]
}

// NewAlertedSet returns an empty AlertedSet.
func NewAlertedSet() *AlertedSet {
	return &AlertedSet{
		hashes: types.NewSet[string](),
	}
}

// Contains reports whether an alert for hash was already delivered.
// A nil set contains nothing.
func (a *AlertedSet) Contains(hash string) bool {
	if a == nil {
		return false
	}
	return a.hashes.Contains(hash)
}

// Add marks hash as alerted. Adding to a nil set is a no-op, so a cycle run
// without a set alerts on every outgoing transaction it sees.
func (a *AlertedSet) Add(hash string) {
	if a == nil {
		return
	}
	a.hashes.Add(hash)
}

// Len returns how many transactions were alerted on.
func (a *AlertedSet) Len() int {
	if a == nil {
		return 0
	}
	return a.hashes.Len()
}
