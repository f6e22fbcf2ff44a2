package config

import (
	"errors"
	"time"
)

const (
	defaultBatchDelay    = 500 * time.Millisecond
	defaultRetryAttempts = 3
	defaultRetryDelay    = 2 * time.Second
)

// SyncConfig drives both the per-user coordinators and the system-wide
// background sweep.
type SyncConfig struct {
	// Interval between reconciliation passes of a per-user coordinator.
	Interval time.Duration `mapstructure:"interval"`
	// BackgroundInterval between system-wide sweeps.
	BackgroundInterval time.Duration `mapstructure:"background-interval"`
	// ActiveWindow is the trailing login window that makes a user eligible
	// for the background sweep.
	ActiveWindow time.Duration `mapstructure:"active-window"`
	// MaxUsersPerSweep caps how many users one sweep reconciles.
	MaxUsersPerSweep int64 `mapstructure:"max-users-per-sweep"`
	// BatchSize is how many users of a sweep run in parallel.
	BatchSize int `mapstructure:"batch-size"`
	// BatchDelay separates consecutive batches to rate-limit the ledger node.
	BatchDelay time.Duration `mapstructure:"batch-delay"`
	// RetryAttempts / RetryDelay bound the per-user retry loop of the sweep.
	RetryAttempts uint          `mapstructure:"retry-attempts"`
	RetryDelay    time.Duration `mapstructure:"retry-delay"`
}

func (cfg *SyncConfig) Validate() error {
	if cfg.Interval <= 0 {
		return errors.New("sync interval must be positive")
	}
	if cfg.BackgroundInterval <= 0 {
		return errors.New("background-interval must be positive")
	}
	if cfg.ActiveWindow <= 0 {
		return errors.New("active-window must be positive")
	}
	if cfg.MaxUsersPerSweep <= 0 {
		return errors.New("max-users-per-sweep must be positive")
	}
	if cfg.BatchSize <= 0 {
		return errors.New("batch-size must be positive")
	}
	if cfg.BatchDelay <= 0 {
		cfg.BatchDelay = defaultBatchDelay
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return nil
}
