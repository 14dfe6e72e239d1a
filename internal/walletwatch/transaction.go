package walletwatch

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// Input is a transaction input reduced to the address and value of the
// output it spends. Coinbase inputs have an empty Address.
type Input struct {
	Address string         // Address of the spent previous output
	Value   btcutil.Amount // Value of the spent previous output, in satoshi
}

// Output is a transaction output.
type Output struct {
	Address string         // Destination address
	Value   btcutil.Amount // Value sent to Address, in satoshi
}

// Transaction is a Bitcoin transaction as reported by the block explorer.
type Transaction struct {
	Hash          string    // Transaction hash, unique per transaction
	Time          time.Time // Time the explorer first saw the transaction
	Confirmations int64     // Number of confirmations at fetch time
	Inputs        []Input   // Inputs in transaction order
	Outputs       []Output  // Outputs in transaction order
}

// OutgoingTransfer describes a transaction that moved funds out of the
// watched wallet. It is only built for transfers with a positive net amount.
type OutgoingTransfer struct {
	Hash          string         // Transaction hash
	Wallet        string         // Watched address the funds left from
	Amount        btcutil.Amount // Net value sent to addresses other than Wallet
	Time          time.Time      // Transaction time
	Confirmations int64          // Confirmations at detection time
}
