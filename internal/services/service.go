package services

import (
	"context"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/clients/ledgerclient"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
)

type Service struct {
	cfg    *config.Config
	db     db.DbInterface
	ledger ledgerclient.LedgerInterface
	guards *guardRegistry

	Sync       *SyncManager
	Background *BackgroundScheduler
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger ledgerclient.LedgerInterface,
) *Service {
	s := &Service{
		cfg:    cfg,
		db:     db,
		ledger: ledger,
		guards: newGuardRegistry(),
	}
	s.Sync = newSyncManager(s)
	s.Background = newBackgroundScheduler(s)
	return s
}

// StartSyncEngine starts the system-wide background sweep. Per-user
// coordinators are started on demand through the management API; nothing
// here runs as an import side effect.
func (s *Service) StartSyncEngine(ctx context.Context) {
	s.Background.Start(ctx)
}
