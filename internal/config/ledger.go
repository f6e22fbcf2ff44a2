package config

import (
	"fmt"
	"net/url"
	"time"
)

// LedgerConfig defines configuration for the Nilotic ledger node client.
type LedgerConfig struct {
	// Endpoint is the base URL of the ledger node's HTTP API, including
	// the protocol prefix, e.g. http://localhost:8080.
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("ledger endpoint is required")
	}
	parsed, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid ledger endpoint %q", cfg.Endpoint)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("ledger timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("ledger max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("ledger retry-interval must be positive")
	}
	return nil
}
