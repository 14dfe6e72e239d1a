// Package email delivers outgoing transfer alerts over SMTP with mandatory
// STARTTLS and PLAIN authentication. It implements
// walletwatch.TransactionNotifier.
package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/telemetry"
	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"

	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultTxURL is the explorer page prefix linked from every alert.
	DefaultTxURL = "https://www.blockchain.com/explorer/transactions/btc"

	dialTimeout = 30 * time.Second
)

// sender is the subset of *mail.Client used to deliver one alert.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// senderFunc builds the sender for a single delivery. Connections it opens
// must not outlive ctx.
type senderFunc func(ctx context.Context) (sender, error)

// Metrics records the outcome of each delivery.
type Metrics interface {
	Observe(err error, started time.Time)
}

type nopMetrics struct{}

func (nopMetrics) Observe(error, time.Time) {}

// Config holds the SMTP account and routing of the alerts.
type Config struct {
	Host     string // SMTP server host name, also used for TLS verification
	Port     int    // SMTP submission port, usually 587
	Username string // Login, also used as the sender address
	Password string // Login secret
	To       string // Single recipient address
	TxURL    string // Explorer page prefix; DefaultTxURL when empty
}

// notifier sends one e-mail per outgoing transfer, opening a fresh SMTP
// session for each of them.
type notifier struct {
	cfg       Config
	helloName string
	location  *time.Location
	newSender senderFunc
	metrics   Metrics
}

// Compile-time check that notifier satisfies walletwatch.TransactionNotifier.
var _ walletwatch.TransactionNotifier = (*notifier)(nil)

// Option customizes the notifier.
type Option func(*notifier)

// New creates an SMTP notifier for cfg.
func New(cfg Config, opts ...Option) *notifier {
	if cfg.TxURL == "" {
		cfg.TxURL = DefaultTxURL
	}

	n := &notifier{
		cfg:       cfg,
		helloName: "localhost",
		location:  time.Local,
		metrics:   nopMetrics{},
	}
	n.newSender = n.smtpClient
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// WithHelloName sets the name announced in EHLO.
//
// Default: "localhost".
func WithHelloName(name string) Option {
	return func(n *notifier) {
		n.helloName = name
	}
}

// WithLocation sets the time zone used for the date in the alert body.
//
// Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(n *notifier) {
		if loc != nil {
			n.location = loc
		}
	}
}

// WithMetrics records every delivery on m.
func WithMetrics(m Metrics) Option {
	return func(n *notifier) {
		if m != nil {
			n.metrics = m
		}
	}
}

// smtpClient builds a go-mail client requiring STARTTLS and PLAIN auth. Its
// connections are closed as soon as ctx ends, so a hung server cannot hold a
// delivery past the caller's deadline.
func (n *notifier) smtpClient(ctx context.Context) (sender, error) {
	return mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithHELO(n.helloName),
		mail.WithTimeout(dialTimeout),
		mail.WithDialContextFunc(closeOnDone(ctx)),
	)
}

// closeOnDone returns a dialer whose connections are closed once ctx ends.
func closeOnDone(ctx context.Context) mail.DialContextFunc {
	return func(dialCtx context.Context, network, address string) (net.Conn, error) {
		d := net.Dialer{Timeout: dialTimeout}
		conn, err := d.DialContext(dialCtx, network, address)
		if err != nil {
			return nil, err
		}

		context.AfterFunc(ctx, func() { conn.Close() })

		return conn, nil
	}
}

// NotifyOutgoingTransfer e-mails an alert for transfer. Rejected credentials
// are reported wrapped in walletwatch.ErrNotifierAuthentication.
func (n *notifier) NotifyOutgoingTransfer(ctx context.Context, transfer walletwatch.OutgoingTransfer) (err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe(err, started)
	}()

	ctx, span := telemetry.Tracer().Start(ctx, "email.NotifyOutgoingTransfer")
	defer span.End()
	span.SetAttributes(
		attribute.String("tx.hash", transfer.Hash),
		attribute.String("smtp.host", n.cfg.Host),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	msg, err := newMessage(n.cfg.Username, n.cfg.To, transfer, n.cfg.TxURL, n.location)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s, err := n.newSender(ctx)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := s.DialAndSendWithContext(ctx, msg); err != nil {
		if isAuthRejection(err) {
			return fmt.Errorf("%w: %w", walletwatch.ErrNotifierAuthentication, err)
		}
		return fmt.Errorf("send alert via %s: %w", n.cfg.Host, err)
	}

	return nil
}

// isAuthRejection reports whether the server refused the session with a
// permanent 5xx reply before any message was submitted. Replies to MAIL, RCPT
// and DATA surface as *mail.SendError and are not credential problems.
func isAuthRejection(err error) bool {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		return false
	}

	var protoErr *textproto.Error
	if !errors.As(err, &protoErr) {
		return false
	}
	return protoErr.Code >= 500 && protoErr.Code < 600
}
