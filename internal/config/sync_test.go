package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncConfig_Validate(t *testing.T) {
	valid := func() *SyncConfig {
		return &SyncConfig{
			Interval:           30 * time.Second,
			BackgroundInterval: 5 * time.Minute,
			ActiveWindow:       24 * time.Hour,
			MaxUsersPerSweep:   50,
			BatchSize:          5,
			BatchDelay:         time.Second,
			RetryAttempts:      3,
			RetryDelay:         2 * time.Second,
		}
	}

	t.Run("all required fields set", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("batch delay not set - should use default", func(t *testing.T) {
		cfg := valid()
		cfg.BatchDelay = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, defaultBatchDelay, cfg.BatchDelay)
	})

	t.Run("retry attempts not set - should use default", func(t *testing.T) {
		cfg := valid()
		cfg.RetryAttempts = 0
		cfg.RetryDelay = -1 * time.Second
		require.NoError(t, cfg.Validate())
		assert.Equal(t, uint(defaultRetryAttempts), cfg.RetryAttempts)
		assert.Equal(t, defaultRetryDelay, cfg.RetryDelay)
	})

	t.Run("sync interval not set - should error", func(t *testing.T) {
		cfg := valid()
		cfg.Interval = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync interval must be positive")
	})

	t.Run("background interval not set - should error", func(t *testing.T) {
		cfg := valid()
		cfg.BackgroundInterval = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "background-interval must be positive")
	})

	t.Run("max users per sweep not set - should error", func(t *testing.T) {
		cfg := valid()
		cfg.MaxUsersPerSweep = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max-users-per-sweep must be positive")
	})

	t.Run("batch size not set - should error", func(t *testing.T) {
		cfg := valid()
		cfg.BatchSize = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size must be positive")
	})
}
