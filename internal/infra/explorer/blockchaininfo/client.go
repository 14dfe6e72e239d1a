// Package blockchaininfo implements walletwatch.TransactionFetcher on top of
// the public blockchain.info "rawaddr" endpoint.
package blockchaininfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/logger"
	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/telemetry"
	httptransport "github.com/sekadau-online/bitcoin-monitor/internal/pkg/transport/http"
	"github.com/sekadau-online/bitcoin-monitor/internal/walletwatch"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultBaseURL is the public blockchain.info API.
	DefaultBaseURL = "https://blockchain.info"

	// defaultLimit is the number of most recent transactions requested.
	defaultLimit = 50

	// operationRawAddr labels rawaddr requests in metrics.
	operationRawAddr = "rawaddr"
)

// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected explorer response status")

// Metrics records the outcome of each explorer request.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}

// client fetches wallet transactions from blockchain.info.
type client struct {
	baseURL    string                // API root, without trailing slash
	limit      int                   // transactions requested per call
	httpClient *retryablehttp.Client // transport with a bounded timeout and no retries
	metrics    Metrics               // request instrumentation
}

// Compile-time check that client satisfies walletwatch.TransactionFetcher.
var _ walletwatch.TransactionFetcher = (*client)(nil)

// config holds optional settings for the client.
type config struct {
	httpClient *retryablehttp.Client
	limit      int
	metrics    Metrics
}

// Option customizes the client.
type Option func(*config)

// NewClient creates a blockchain.info client rooted at baseURL. An empty
// baseURL falls back to DefaultBaseURL. Without WithHTTPClient, requests use a
// 15 second timeout and a single attempt.
func NewClient(baseURL string, opts ...Option) *client {
	cfg := config{
		limit:   defaultLimit,
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = httptransport.NewClient(
			httptransport.WithTimeout(15*time.Second),
			httptransport.WithRetryMax(0),
			httptransport.WithPassthroughErrors(),
		)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      cfg.limit,
		httpClient: cfg.httpClient,
		metrics:    cfg.metrics,
	}
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithLimit sets how many recent transactions are requested.
//
// Default: 50.
func WithLimit(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.limit = n
		}
	}
}

// WithMetrics records every request on m.
func WithMetrics(m Metrics) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.metrics = m
		}
	}
}

// rawAddrURL builds <base>/rawaddr/<address>?limit=<n>.
func (c *client) rawAddrURL(address string) string {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.limit))

	return c.baseURL + "/rawaddr/" + url.PathEscape(address) + "?" + query.Encode()
}

// FetchTransactions returns the most recent transactions of address in the
// order reported by the API. A response without a "txs" field yields an empty
// result.
func (c *client) FetchTransactions(ctx context.Context, address string) (txs []walletwatch.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operationRawAddr, err, started)
	}()

	ctx, span := telemetry.Tracer().Start(ctx, "blockchaininfo.FetchTransactions")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.rawAddrURL(address), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var body rawAddrResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rawaddr response: %w", err)
	}

	txs = body.toTransactions()
	logger.Debug(ctx, "explorer response decoded",
		"wallet.address", address,
		"tx.count", len(txs),
		"wallet.tx_total", body.TxCount,
	)
	for _, tx := range body.Txs {
		logger.Debug(ctx, "explorer transaction received", tx.summary()...)
	}

	return txs, nil
}
