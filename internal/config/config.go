// Package config loads the monitor settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting read at startup.
type Config struct {
	WatchedAddress       string `envconfig:"WATCHED_ADDRESS" required:"true" validate:"required"`
	CheckIntervalSeconds int    `envconfig:"CHECK_INTERVAL" default:"300" validate:"min=1"`

	SMTPServer string `envconfig:"SMTP_SERVER" default:"smtp.gmail.com" validate:"required,hostname_rfc1123"`
	SMTPPort   int    `envconfig:"SMTP_PORT" default:"587" validate:"min=1,max=65535"`
	EmailUser  string `envconfig:"EMAIL_USER" required:"true" validate:"required"`
	EmailPass  string `envconfig:"EMAIL_PASS" required:"true" validate:"required"`
	EmailTo    string `envconfig:"EMAIL_TO" required:"true" validate:"required,email"`

	ExplorerAPIURL string `envconfig:"EXPLORER_API_URL" default:"https://blockchain.info" validate:"required,url"`
	ExplorerTxURL  string `envconfig:"EXPLORER_TX_URL" default:"https://www.blockchain.com/explorer/transactions/btc" validate:"required,url"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	MetricsAddr      string `envconfig:"METRICS_ADDR" validate:"omitempty,hostname_port"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"bitcoin-monitor" validate:"required"`
}

// CheckInterval returns the polling period.
func (c Config) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

// Load reads the given .env files (".env" when none is given) into the process
// environment without overriding variables already set, then decodes and
// validates the configuration. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
