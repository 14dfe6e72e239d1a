// Package http provides a configurable HTTP client built on HashiCorp's
// retryablehttp. Functional options tune timeouts and retry behaviour; with
// WithRetryMax(0) the client performs exactly one attempt per request.
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout         time.Duration // maximum duration for a single HTTP request
	retryWaitMin    time.Duration // minimum delay between retry attempts
	retryWaitMax    time.Duration // maximum delay between retry attempts
	retryMax        int           // maximum number of retry attempts
	passthroughErrs bool          // return the last response instead of a "giving up" error
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      15 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     0 retries
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      15 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	if cfg.passthroughErrs {
		client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	}
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 15 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 0 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithPassthroughErrors makes the client hand back the last response (for
// example a 503) so callers can inspect its status code themselves.
func WithPassthroughErrors() Option {
	return func(c *config) {
		c.passthroughErrs = true
	}
}
