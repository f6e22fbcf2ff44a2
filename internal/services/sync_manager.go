package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/utils/poller"
)

// SyncStatus is the externally visible state of a per-user coordinator.
type SyncStatus struct {
	UserID           string     `json:"user_id"`
	Running          bool       `json:"running"`
	IsSyncing        bool       `json:"is_syncing"`
	LastSync         *time.Time `json:"last_sync,omitempty"`
	LastError        string     `json:"last_error,omitempty"`
	WalletCount      int        `json:"wallet_count"`
	TransactionCount int        `json:"transaction_count"`
}

// userCoordinator owns the periodic reconciliation loop of one user.
type userCoordinator struct {
	userID string
	cancel context.CancelFunc
	poller *poller.Poller

	mu               sync.Mutex
	lastSync         time.Time
	lastError        string
	walletCount      int
	transactionCount int
}

func (c *userCoordinator) recordPass(result *PassResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSync = time.Now()
	if err != nil {
		c.lastError = err.Error()
		return
	}
	c.lastError = ""
	c.walletCount = result.WalletCount()
	c.transactionCount = result.TransactionCount()
}

// SyncManager tracks one coordinator per user with an active session.
type SyncManager struct {
	service *Service

	mu           sync.Mutex
	coordinators map[string]*userCoordinator
}

func newSyncManager(service *Service) *SyncManager {
	return &SyncManager{
		service:      service,
		coordinators: make(map[string]*userCoordinator),
	}
}

// Start launches a coordinator for the user: one immediate pass, then a
// periodic one at the configured interval. Starting an already started user
// is a no-op.
func (m *SyncManager) Start(ctx context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.coordinators[userID]; ok {
		log.Ctx(ctx).Debug().Str("user_id", userID).Msg("Sync coordinator already running")
		return
	}

	// The coordinator outlives the request that started it.
	coordCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	coordinator := &userCoordinator{
		userID: userID,
		cancel: cancel,
	}
	coordinator.poller = poller.NewPoller(m.service.cfg.Sync.Interval, func(pollCtx context.Context) error {
		result, err := m.service.ReconcileUser(pollCtx, userID, TriggerScheduled)
		if errors.Is(err, ErrSyncInProgress) {
			// Tick overlapped a still-running pass; the next tick catches up.
			return nil
		}
		coordinator.recordPass(result, err)
		return err
	})
	m.coordinators[userID] = coordinator

	go func() {
		result, err := m.service.ReconcileUser(coordCtx, userID, TriggerScheduled)
		if !errors.Is(err, ErrSyncInProgress) {
			coordinator.recordPass(result, err)
		}
		coordinator.poller.Start(coordCtx)
	}()

	log.Ctx(ctx).Info().Str("user_id", userID).Msg("Sync coordinator started")
}

// Stop tears down the user's coordinator. Stopping a user without one is a
// no-op.
func (m *SyncManager) Stop(ctx context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coordinator, ok := m.coordinators[userID]
	if !ok {
		return
	}
	coordinator.cancel()
	delete(m.coordinators, userID)
	log.Ctx(ctx).Info().Str("user_id", userID).Msg("Sync coordinator stopped")
}

// Force runs an out-of-band pass immediately, without disturbing the
// periodic schedule. It shares the in-progress guard with the scheduled
// passes, so a forced pass during a running one returns ErrSyncInProgress.
func (m *SyncManager) Force(ctx context.Context, userID string) (*PassResult, error) {
	result, err := m.service.ReconcileUser(ctx, userID, TriggerForced)
	if coordinator := m.coordinator(userID); coordinator != nil && !errors.Is(err, ErrSyncInProgress) {
		coordinator.recordPass(result, err)
	}
	return result, err
}

func (m *SyncManager) coordinator(userID string) *userCoordinator {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coordinators[userID]
}

// Status reports the coordinator state for the user. The second return is
// false when the user has no coordinator.
func (m *SyncManager) Status(userID string) (*SyncStatus, bool) {
	coordinator := m.coordinator(userID)
	if coordinator == nil {
		return nil, false
	}

	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	status := &SyncStatus{
		UserID:           userID,
		Running:          true,
		IsSyncing:        m.service.guards.inProgress(userID),
		LastError:        coordinator.lastError,
		WalletCount:      coordinator.walletCount,
		TransactionCount: coordinator.transactionCount,
	}
	if !coordinator.lastSync.IsZero() {
		lastSync := coordinator.lastSync
		status.LastSync = &lastSync
	}
	return status, true
}
