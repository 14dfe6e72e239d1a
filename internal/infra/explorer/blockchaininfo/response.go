package blockchaininfo

import (
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"

	"github.com/btcsuite/btcd/btcutil"
)

type (
	// outputResponse is an output as serialized by the API. Values are satoshi.
	outputResponse struct {
		Addr  string `json:"addr"`
		Value int64  `json:"value"`
	}

	// inputResponse is a transaction input. PrevOut is absent for coinbase
	// inputs.
	inputResponse struct {
		PrevOut *outputResponse `json:"prev_out"`
	}

	// transactionResponse is a single entry of the "txs" array.
	transactionResponse struct {
		Hash          string           `json:"hash"`
		Time          int64            `json:"time"`
		Confirmations int64            `json:"confirmations"`
		Inputs        []inputResponse  `json:"inputs"`
		Out           []outputResponse `json:"out"`
	}

	// rawAddrResponse is the body returned by /rawaddr/<address>.
	rawAddrResponse struct {
		Address string                `json:"address"`
		TxCount int64                 `json:"n_tx"`
		Txs     []transactionResponse `json:"txs"`
	}
)

// summary returns the key/value pairs logged for each raw record.
func (t transactionResponse) summary() []any {
	coinbase := 0
	for _, in := range t.Inputs {
		if in.PrevOut == nil {
			coinbase++
		}
	}

	return []any{
		"tx.hash", t.Hash,
		"tx.time", t.Time,
		"tx.confirmations", t.Confirmations,
		"tx.inputs", len(t.Inputs),
		"tx.inputs_coinbase", coinbase,
		"tx.outputs", len(t.Out),
	}
}

func (r rawAddrResponse) toTransactions() []walletwatch.Transaction {
	txs := make([]walletwatch.Transaction, 0, len(r.Txs))
	for _, tx := range r.Txs {
		txs = append(txs, tx.toTransaction())
	}
	return txs
}

func (t transactionResponse) toTransaction() walletwatch.Transaction {
	inputs := make([]walletwatch.Input, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		if in.PrevOut == nil {
			inputs = append(inputs, walletwatch.Input{})
			continue
		}

		inputs = append(inputs, walletwatch.Input{
			Address: in.PrevOut.Addr,
			Value:   btcutil.Amount(in.PrevOut.Value),
		})
	}

	outputs := make([]walletwatch.Output, 0, len(t.Out))
	for _, out := range t.Out {
		outputs = append(outputs, walletwatch.Output{
			Address: out.Addr,
			Value:   btcutil.Amount(out.Value),
		})
	}

	return walletwatch.Transaction{
		Hash:          t.Hash,
		Time:          time.Unix(t.Time, 0),
		Confirmations: t.Confirmations,
		Inputs:        inputs,
		Outputs:       outputs,
	}
}
