package email

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestFormatBTC(t *testing.T) {
	testCases := []struct {
		sats     btcutil.Amount
		expected string
	}{
		{sats: 100_000_000, expected: "1.00000000"},
		{sats: 1, expected: "0.00000001"},
		{sats: 123_456_789, expected: "1.23456789"},
		{sats: 2_100_000_000_000_000, expected: "21000000.00000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatBTC(tc.sats))
		})
	}
}

func TestBody(t *testing.T) {
	expected := "CRITICAL: Bitcoin movement detected from monitored wallet!\n\n" +
		"Transaction Hash: abc\n" +
		"Blockchain: Bitcoin\n" +
		"From: W\n" +
		"Amount: 1.00000000 BTC\n" +
		"Date: 2023-11-14 22:13:20\n\n" +
		"Confirmations: 3\n" +
		"Verify transaction: https://explorer.test/tx/abc"

	assert.Equal(t, expected, body(testTransfer(), "https://explorer.test/tx", time.UTC))
}

func TestNewMessage(t *testing.T) {
	t.Run("should set the alert headers", func(t *testing.T) {
		m, err := newMessage("from@example.test", "to@example.test", testTransfer(), DefaultTxURL, time.UTC)
		require.NoError(t, err)

		assert.Equal(t, []string{subject}, m.GetGenHeader(mail.HeaderSubject))
		assert.NotEmpty(t, m.GetGenHeader(mail.HeaderDate))
		assert.NotEmpty(t, m.GetGenHeader(mail.HeaderMessageID))

		msg := render(t, m)
		assert.Contains(t, msg, "text/plain")
		assert.Contains(t, msg, "CRITICAL: Bitcoin movement detected")
	})

	t.Run("should reject an invalid sender", func(t *testing.T) {
		_, err := newMessage("", "to@example.test", testTransfer(), DefaultTxURL, time.UTC)
		assert.ErrorContains(t, err, "sender address")
	})
}
