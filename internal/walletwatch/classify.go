package walletwatch

import "github.com/btcsuite/btcd/btcutil"

// spendsFrom reports whether any input of tx spends an output owned by
// wallet. Scanning stops at the first match: the remaining inputs are not
// checked, so a transaction co-signed with other wallets still counts as
// outgoing. This is a known approximation for multi-party transactions.
func spendsFrom(tx Transaction, wallet string) bool {
	for _, in := range tx.Inputs {
		if in.Address == wallet {
			return true
		}
	}
	return false
}

// netOutgoingValue sums every output of tx not paying back to wallet, which
// excludes change returned to the sender.
func netOutgoingValue(tx Transaction, wallet string) btcutil.Amount {
	var total btcutil.Amount
	for _, out := range tx.Outputs {
		if out.Address != wallet {
			total += out.Value
		}
	}
	return total
}

// classify decides whether tx is a new outgoing transfer from wallet.
//
// Transactions without a hash or already present in alerted are skipped
// before any other work. Receives (wallet absent from the inputs) and
// self-transfers (every output returns to wallet) are never reported.
func classify(tx Transaction, wallet string, alerted *AlertedSet) (OutgoingTransfer, bool) {
	if tx.Hash == "" || alerted.Contains(tx.Hash) {
		return OutgoingTransfer{}, false
	}

	if !spendsFrom(tx, wallet) {
		return OutgoingTransfer{}, false
	}

	amount := netOutgoingValue(tx, wallet)
	if amount <= 0 {
		return OutgoingTransfer{}, false
	}

	return OutgoingTransfer{
		Hash:          tx.Hash,
		Wallet:        wallet,
		Amount:        amount,
		Time:          tx.Time,
		Confirmations: tx.Confirmations,
	}, true
}
