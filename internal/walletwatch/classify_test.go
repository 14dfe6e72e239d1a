package walletwatch

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
)

const (
	watched = "bc1qwatchedwallet"
	other   = "bc1qsomeoneelse"
	third   = "bc1qthirdparty"
)

func TestSpendsFrom(t *testing.T) {
	testCases := []struct {
		name     string
		inputs   []Input
		expected bool
	}{
		{name: "no inputs", inputs: nil, expected: false},
		{name: "only foreign inputs", inputs: []Input{{Address: other}, {Address: third}}, expected: false},
		{name: "wallet is the first input", inputs: []Input{{Address: watched}, {Address: other}}, expected: true},
		{name: "wallet is a later input", inputs: []Input{{Address: other}, {Address: watched}}, expected: true},
		{name: "coinbase input without address", inputs: []Input{{Address: ""}}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, spendsFrom(Transaction{Inputs: tc.inputs}, watched))
		})
	}
}

func TestNetOutgoingValue(t *testing.T) {
	t.Run("should exclude change returned to the wallet", func(t *testing.T) {
		tx := Transaction{
			Outputs: []Output{
				{Address: other, Value: 70_000},
				{Address: watched, Value: 20_000},
				{Address: third, Value: 5_000},
			},
		}

		assert.Equal(t, btcutil.Amount(75_000), netOutgoingValue(tx, watched))
	})

	t.Run("should count outputs without address as outgoing", func(t *testing.T) {
		tx := Transaction{Outputs: []Output{{Address: "", Value: 1_000}}}

		assert.Equal(t, btcutil.Amount(1_000), netOutgoingValue(tx, watched))
	})

	t.Run("should be zero when every output returns to the wallet", func(t *testing.T) {
		tx := Transaction{Outputs: []Output{{Address: watched, Value: 9_000}}}

		assert.Zero(t, netOutgoingValue(tx, watched))
	})
}

func TestClassify(t *testing.T) {
	txTime := time.Unix(1_700_000_000, 0)

	outgoing := Transaction{
		Hash:          "abc",
		Time:          txTime,
		Confirmations: 3,
		Inputs:        []Input{{Address: watched, Value: 150_000_000}},
		Outputs: []Output{
			{Address: other, Value: 100_000_000},
			{Address: watched, Value: 49_990_000},
		},
	}

	t.Run("should report an outgoing transfer with its net amount", func(t *testing.T) {
		transfer, ok := classify(outgoing, watched, NewAlertedSet())

		assert.True(t, ok)
		assert.Equal(t, OutgoingTransfer{
			Hash:          "abc",
			Wallet:        watched,
			Amount:        100_000_000,
			Time:          txTime,
			Confirmations: 3,
		}, transfer)
	})

	t.Run("should skip transactions already alerted", func(t *testing.T) {
		alerted := NewAlertedSet()
		alerted.Add("abc")

		_, ok := classify(outgoing, watched, alerted)
		assert.False(t, ok)
	})

	t.Run("should skip transactions without hash", func(t *testing.T) {
		tx := outgoing
		tx.Hash = ""

		_, ok := classify(tx, watched, NewAlertedSet())
		assert.False(t, ok)
	})

	t.Run("should skip receives", func(t *testing.T) {
		tx := Transaction{
			Hash:    "incoming",
			Inputs:  []Input{{Address: other, Value: 10_000}},
			Outputs: []Output{{Address: watched, Value: 9_000}},
		}

		_, ok := classify(tx, watched, NewAlertedSet())
		assert.False(t, ok)
	})

	t.Run("should skip self-transfers", func(t *testing.T) {
		tx := Transaction{
			Hash:    "self",
			Inputs:  []Input{{Address: watched, Value: 10_000}},
			Outputs: []Output{{Address: watched, Value: 9_000}},
		}

		_, ok := classify(tx, watched, NewAlertedSet())
		assert.False(t, ok)
	})

	t.Run("should skip transactions without outputs", func(t *testing.T) {
		tx := Transaction{
			Hash:   "empty",
			Inputs: []Input{{Address: watched, Value: 10_000}},
		}

		_, ok := classify(tx, watched, NewAlertedSet())
		assert.False(t, ok)
	})

	t.Run("should report multi-party spends sharing the wallet", func(t *testing.T) {
		tx := Transaction{
			Hash:    "coinjoin",
			Inputs:  []Input{{Address: other, Value: 10_000}, {Address: watched, Value: 10_000}},
			Outputs: []Output{{Address: third, Value: 19_000}},
		}

		transfer, ok := classify(tx, watched, NewAlertedSet())
		assert.True(t, ok)
		assert.Equal(t, btcutil.Amount(19_000), transfer.Amount)
	})

	t.Run("should treat a nil alerted set as empty", func(t *testing.T) {
		_, ok := classify(outgoing, watched, nil)
		assert.True(t, ok)
	})
}

func BenchmarkClassify(b *testing.B) {
	tx := Transaction{
		Hash:    "bench",
		Inputs:  []Input{{Address: other}, {Address: third}, {Address: watched}},
		Outputs: []Output{{Address: other, Value: 1}, {Address: watched, Value: 2}, {Address: third, Value: 3}},
	}
	alerted := NewAlertedSet()

	b.ResetTimer()
	for range b.N {
		classify(tx, watched, alerted)
	}
}
