package email

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/wneessen/go-mail"
)

const (
	subject    = "ALERT: Outgoing Bitcoin Transaction!"
	dateLayout = "2006-01-02 15:04:05"
)

// formatBTC renders an amount with exactly eight decimals.
func formatBTC(amount btcutil.Amount) string {
	return strconv.FormatFloat(amount.ToBTC(), 'f', 8, 64)
}

// body renders the plain-text alert for transfer. Timestamps are shown in loc.
func body(transfer walletwatch.OutgoingTransfer, txURL string, loc *time.Location) string {
	var b bytes.Buffer

	b.WriteString("CRITICAL: Bitcoin movement detected from monitored wallet!\n\n")
	fmt.Fprintf(&b, "Transaction Hash: %s\n", transfer.Hash)
	b.WriteString("Blockchain: Bitcoin\n")
	fmt.Fprintf(&b, "From: %s\n", transfer.Wallet)
	fmt.Fprintf(&b, "Amount: %s BTC\n", formatBTC(transfer.Amount))
	fmt.Fprintf(&b, "Date: %s\n\n", transfer.Time.In(loc).Format(dateLayout))
	fmt.Fprintf(&b, "Confirmations: %d\n", transfer.Confirmations)
	fmt.Fprintf(&b, "Verify transaction: %s/%s", txURL, transfer.Hash)

	return b.String()
}

// newMessage builds the alert e-mail for transfer, stamped with the current
// date and a fresh Message-ID.
func newMessage(from, to string, transfer walletwatch.OutgoingTransfer, txURL string, loc *time.Location) (*mail.Msg, error) {
	m := mail.NewMsg(mail.WithCharset(mail.CharsetUTF8), mail.WithEncoding(mail.NoEncoding))

	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}

	m.Subject(subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, body(transfer, txURL, loc))

	return m, nil
}
