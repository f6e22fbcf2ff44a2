package services

import (
	"testing"
	"time"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
	"github.com/niloticlabs/nilotic-ledger-sync/tests/mocks"
)

func testService(t *testing.T) (*Service, *mocks.DbInterface, *mocks.LedgerInterface) {
	t.Helper()

	cfg := &config.Config{
		Sync: config.SyncConfig{
			Interval:           time.Minute,
			BackgroundInterval: time.Minute,
			ActiveWindow:       time.Hour,
			MaxUsersPerSweep:   100,
			BatchSize:          2,
			BatchDelay:         time.Millisecond,
			RetryAttempts:      2,
			RetryDelay:         time.Millisecond,
		},
	}

	dbClient := mocks.NewDbInterface(t)
	ledgerClient := mocks.NewLedgerInterface(t)
	return NewService(cfg, dbClient, ledgerClient), dbClient, ledgerClient
}
