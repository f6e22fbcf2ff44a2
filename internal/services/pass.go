package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
)

// ErrSyncInProgress is returned when a reconciliation pass is requested for a
// user whose previous pass has not finished yet. Callers treat it as a benign
// skip, never as a failure.
var ErrSyncInProgress = errors.New("reconciliation already in progress for user")

// Trigger values recorded on sync pass metrics.
const (
	TriggerScheduled  = "scheduled"
	TriggerBackground = "background"
	TriggerForced     = "forced"
)

// PassResult summarizes one completed reconciliation pass.
type PassResult struct {
	UserID       string
	Trigger      string
	StartedAt    time.Time
	Duration     time.Duration
	Wallets      []WalletReconcileResult
	Transactions []TransactionIngestResult
}

// WalletCount returns the number of wallets examined by the pass.
func (r *PassResult) WalletCount() int {
	return len(r.Wallets)
}

// TransactionCount returns the number of transactions touching the user's
// wallets that the pass observed on the ledger.
func (r *PassResult) TransactionCount() int {
	return len(r.Transactions)
}

// ReconcileUser runs one full reconciliation pass for the user, guarded by
// the per-user in-progress flag. If a pass is already running the request is
// dropped, not queued.
func (s *Service) ReconcileUser(ctx context.Context, userID, trigger string) (*PassResult, error) {
	release, ok := s.guards.acquire(userID)
	if !ok {
		metrics.RecordSyncPassSkipped()
		log.Ctx(ctx).Debug().
			Str("user_id", userID).
			Str("trigger", trigger).
			Msg("Skipping reconciliation pass, previous pass still running")
		return nil, ErrSyncInProgress
	}
	defer release()

	startTime := time.Now()
	result, err := s.runPass(ctx, userID, trigger)
	duration := time.Since(startTime)

	metrics.RecordSyncPassDuration(duration, trigger, err != nil)

	if err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("user_id", userID).
			Str("trigger", trigger).
			Msg("Reconciliation pass failed")
		return nil, err
	}

	result.StartedAt = startTime
	result.Duration = duration

	log.Ctx(ctx).Info().
		Str("user_id", userID).
		Str("trigger", trigger).
		Int("wallets", result.WalletCount()).
		Int("transactions", result.TransactionCount()).
		Dur("duration", duration).
		Msg("Reconciliation pass completed")
	return result, nil
}

// runPass executes the three stages of a pass in their fixed order: wallets
// first, then the transaction history, then the staking aggregate. The
// aggregate is computed from stored rows, so it must run after ingestion.
func (s *Service) runPass(ctx context.Context, userID, trigger string) (*PassResult, error) {
	wallets, err := s.db.GetWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets for user %s: %w", userID, err)
	}

	// The chain endpoint returns the global transaction set. Fetch it once
	// and share it between wallet discovery and ingestion.
	ledgerTxs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}

	// Ingestion and aggregation filter against the wallet set as it stands
	// after discovery, so a transaction touching a wallet registered by this
	// very pass is stored by this very pass.
	walletResults, userAddrs, apy := s.reconcileWallets(ctx, userID, wallets, ledgerTxs)

	txResults := s.ingestTransactions(ctx, userAddrs, ledgerTxs)

	if err := s.aggregateStaking(ctx, userID, userAddrs, apy); err != nil {
		return nil, err
	}

	return &PassResult{
		UserID:       userID,
		Trigger:      trigger,
		Wallets:      walletResults,
		Transactions: txResults,
	}, nil
}
