package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/utils/poller"
)

// BackgroundStatus is the externally visible state of the sweep scheduler.
type BackgroundStatus struct {
	Running        bool             `json:"running"`
	LastSweep      *time.Time       `json:"last_sweep,omitempty"`
	LastSweepUsers int              `json:"last_sweep_users"`
	Config         BackgroundConfig `json:"config"`
}

// BackgroundConfig is the tunable subset of the sweep settings.
type BackgroundConfig struct {
	Interval         time.Duration `json:"interval"`
	ActiveWindow     time.Duration `json:"active_window"`
	MaxUsersPerSweep int64         `json:"max_users_per_sweep"`
	BatchSize        int           `json:"batch_size"`
	BatchDelay       time.Duration `json:"batch_delay"`
	RetryAttempts    uint          `json:"retry_attempts"`
	RetryDelay       time.Duration `json:"retry_delay"`
}

// BackgroundConfigUpdate carries a partial config change; nil fields keep
// their current value.
type BackgroundConfigUpdate struct {
	ActiveWindow     *time.Duration
	MaxUsersPerSweep *int64
	BatchSize        *int
	BatchDelay       *time.Duration
	RetryAttempts    *uint
	RetryDelay       *time.Duration
}

// BackgroundScheduler periodically reconciles every recently active user,
// regardless of whether a per-user coordinator exists for them.
type BackgroundScheduler struct {
	service *Service

	mu             sync.Mutex
	running        bool
	cancel         context.CancelFunc
	poller         *poller.Poller
	cfg            BackgroundConfig
	lastSweep      time.Time
	lastSweepUsers int
}

func newBackgroundScheduler(service *Service) *BackgroundScheduler {
	syncCfg := service.cfg.Sync
	return &BackgroundScheduler{
		service: service,
		cfg: BackgroundConfig{
			Interval:         syncCfg.BackgroundInterval,
			ActiveWindow:     syncCfg.ActiveWindow,
			MaxUsersPerSweep: syncCfg.MaxUsersPerSweep,
			BatchSize:        syncCfg.BatchSize,
			BatchDelay:       syncCfg.BatchDelay,
			RetryAttempts:    syncCfg.RetryAttempts,
			RetryDelay:       syncCfg.RetryDelay,
		},
	}
}

// Start launches the periodic sweep. Starting an already running scheduler
// is a no-op.
func (b *BackgroundScheduler) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		log.Ctx(ctx).Debug().Msg("Background scheduler already running")
		return
	}

	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel
	b.poller = poller.NewPoller(
		b.cfg.Interval,
		metrics.RecordPollerDuration("background_sweep", b.sweep),
	)
	b.running = true

	go b.poller.Start(sweepCtx)
	log.Ctx(ctx).Info().Dur("interval", b.cfg.Interval).Msg("Background scheduler started")
}

// Stop halts the periodic sweep. A sweep already underway finishes.
func (b *BackgroundScheduler) Stop(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}
	b.cancel()
	b.running = false
	log.Ctx(ctx).Info().Msg("Background scheduler stopped")
}

// Force runs one sweep immediately, whether or not the scheduler is running.
func (b *BackgroundScheduler) Force(ctx context.Context) error {
	return metrics.RecordPollerDuration("background_sweep", b.sweep)(ctx)
}

// Status reports the scheduler state.
func (b *BackgroundScheduler) Status() *BackgroundStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	status := &BackgroundStatus{
		Running:        b.running,
		LastSweepUsers: b.lastSweepUsers,
		Config:         b.cfg,
	}
	if !b.lastSweep.IsZero() {
		lastSweep := b.lastSweep
		status.LastSweep = &lastSweep
	}
	return status
}

// UpdateConfig applies a partial settings change. The sweep interval itself
// is fixed at start time; the remaining knobs take effect on the next sweep.
func (b *BackgroundScheduler) UpdateConfig(update BackgroundConfigUpdate) BackgroundConfig {
	b.mu.Lock()
	defer b.mu.Unlock()

	if update.ActiveWindow != nil {
		b.cfg.ActiveWindow = *update.ActiveWindow
	}
	if update.MaxUsersPerSweep != nil {
		b.cfg.MaxUsersPerSweep = *update.MaxUsersPerSweep
	}
	if update.BatchSize != nil {
		b.cfg.BatchSize = *update.BatchSize
	}
	if update.BatchDelay != nil {
		b.cfg.BatchDelay = *update.BatchDelay
	}
	if update.RetryAttempts != nil {
		b.cfg.RetryAttempts = *update.RetryAttempts
	}
	if update.RetryDelay != nil {
		b.cfg.RetryDelay = *update.RetryDelay
	}
	return b.cfg
}

func (b *BackgroundScheduler) snapshotConfig() BackgroundConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// sweep reconciles every user active within the trailing window, in batches
// so the ledger node is not hammered by the whole user base at once.
func (b *BackgroundScheduler) sweep(ctx context.Context) error {
	cfg := b.snapshotConfig()

	users, err := b.service.db.FindActiveUsers(ctx, time.Now().Add(-cfg.ActiveWindow), cfg.MaxUsersPerSweep)
	if err != nil {
		return err
	}

	metrics.RecordSweepUsers(len(users))
	b.mu.Lock()
	b.lastSweep = time.Now()
	b.lastSweepUsers = len(users)
	b.mu.Unlock()

	log.Ctx(ctx).Info().
		Int("users", len(users)).
		Dur("active_window", cfg.ActiveWindow).
		Msg("Background sweep starting")

	for start := 0; start < len(users); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(users))

		batch := pool.New().WithMaxGoroutines(cfg.BatchSize).WithErrors()
		for _, user := range users[start:end] {
			userID := user.ID
			batch.Go(func() error {
				return b.reconcileWithRetry(ctx, userID, cfg)
			})
		}
		if err := batch.Wait(); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Background sweep batch had failures")
		}

		if end < len(users) {
			select {
			case <-time.After(cfg.BatchDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	log.Ctx(ctx).Info().Int("users", len(users)).Msg("Background sweep finished")
	return nil
}

// reconcileWithRetry runs the user's pass with a bounded retry loop. The
// retry knobs come from the sweep's config snapshot, so a settings change
// takes effect on the next sweep. A pass already in progress elsewhere
// counts as done, not as a failure.
func (b *BackgroundScheduler) reconcileWithRetry(ctx context.Context, userID string, cfg BackgroundConfig) error {
	return retry.Do(
		func() error {
			_, err := b.service.ReconcileUser(ctx, userID, TriggerBackground)
			if errors.Is(err, ErrSyncInProgress) {
				return nil
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(cfg.RetryAttempts),
		retry.Delay(cfg.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).
				Str("user_id", userID).
				Uint("attempt", n+1).
				Msg("Retrying background reconciliation for user")
		}),
	)
}
