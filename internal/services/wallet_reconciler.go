package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/clients/ledgerclient"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

// WalletReconcileResult records what happened to a single wallet during a
// pass.
type WalletReconcileResult struct {
	Address    string
	Updated    bool
	Discovered bool
	OldBalance float64
	NewBalance float64
	OldStaked  float64
	NewStaked  float64
	OldRewards float64
	NewRewards float64
}

// reconcileWallets brings the stored wallet rows in line with the ledger.
// It first registers counterpart addresses seen in the user's transactions
// as external wallets, then refreshes balances and staking figures for every
// wallet of the user. A failure on one wallet does not abort its siblings.
//
// The returned address set is the user's wallet set after discovery, so the
// later pass stages filter against wallets registered moments ago, not
// against the rows as they stood when the pass began.
//
// The returned apy is the first non-zero rate reported by the ledger for any
// of the user's wallets; the aggregator falls back to a default when no
// wallet stakes.
func (s *Service) reconcileWallets(
	ctx context.Context,
	userID string,
	wallets []*model.WalletDocument,
	ledgerTxs []ledgerclient.ChainTransaction,
) ([]WalletReconcileResult, map[string]bool, float64) {
	known := make(map[string]bool, len(wallets))
	for _, w := range wallets {
		known[w.Address] = true
	}

	discovered := s.discoverCounterparts(ctx, userID, known, ledgerTxs)

	// The known map also marks counterparts whose save hit a duplicate key,
	// possibly stored under another user. Only wallets of this user belong
	// in the filtering set.
	owned := make(map[string]bool, len(wallets)+len(discovered))
	for _, w := range wallets {
		owned[w.Address] = true
	}
	for _, w := range discovered {
		owned[w.Address] = true
	}

	results := make([]WalletReconcileResult, 0, len(wallets)+len(discovered))
	var apy float64

	for _, wallet := range append(wallets, discovered...) {
		result, walletApy, err := s.refreshWallet(ctx, wallet)
		if err != nil {
			// A flaky ledger response for one address must not lose the
			// progress made on the others.
			log.Ctx(ctx).Error().Err(err).
				Str("address", wallet.Address).
				Msg("Failed to refresh wallet, continuing with remaining wallets")
			continue
		}
		if apy == 0 {
			apy = walletApy
		}
		results = append(results, *result)
	}

	return results, owned, apy
}

// discoverCounterparts registers ordinary addresses that transact with the
// user's wallets but are not stored yet. System addresses (pools, coinbase)
// are never registered.
func (s *Service) discoverCounterparts(
	ctx context.Context,
	userID string,
	known map[string]bool,
	ledgerTxs []ledgerclient.ChainTransaction,
) []*model.WalletDocument {
	var discovered []*model.WalletDocument

	for _, tx := range ledgerTxs {
		var counterpart string
		switch {
		case known[tx.From] && !known[tx.To]:
			counterpart = tx.To
		case known[tx.To] && !known[tx.From]:
			counterpart = tx.From
		default:
			continue
		}
		if counterpart == "" || types.IsSystemAddress(counterpart) {
			continue
		}

		walletDoc := &model.WalletDocument{
			Address: counterpart,
			UserID:  userID,
			Name:    fmt.Sprintf("External %s", shortAddress(counterpart)),
			Kind:    types.WalletKindExternal,
		}
		if err := s.db.SaveNewWallet(ctx, walletDoc); err != nil {
			if db.IsDuplicateKeyError(err) {
				// Already registered, possibly under another user.
				known[counterpart] = true
				continue
			}
			// rediscovered and retried on the next pass
			log.Ctx(ctx).Error().Err(err).
				Str("address", counterpart).
				Msg("Failed to save discovered wallet, continuing")
			continue
		}

		known[counterpart] = true
		discovered = append(discovered, walletDoc)
		log.Ctx(ctx).Info().
			Str("user_id", userID).
			Str("address", counterpart).
			Msg("Discovered counterpart wallet")
	}

	metrics.RecordWalletsDiscovered(len(discovered))
	return discovered
}

// refreshWallet pulls the authoritative balance and staking figures for one
// wallet and persists them when they differ from the stored row.
func (s *Service) refreshWallet(
	ctx context.Context,
	wallet *model.WalletDocument,
) (*WalletReconcileResult, float64, error) {
	balance, err := s.ledger.GetBalance(ctx, wallet.Address)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get balance for %s: %w", wallet.Address, err)
	}

	snapshot, err := s.ledger.GetStakingSnapshot(ctx, wallet.Address)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get staking snapshot for %s: %w", wallet.Address, err)
	}

	result := &WalletReconcileResult{
		Address:    wallet.Address,
		Discovered: wallet.Kind == types.WalletKindExternal && wallet.LastActivity == 0,
		OldBalance: wallet.Balance,
		NewBalance: balance,
		OldStaked:  wallet.Staked,
		NewStaked:  snapshot.TotalStaked,
		OldRewards: wallet.Rewards,
		NewRewards: snapshot.TotalRewards,
	}

	if balance == wallet.Balance &&
		snapshot.TotalStaked == wallet.Staked &&
		snapshot.TotalRewards == wallet.Rewards {
		return result, snapshot.Apy, nil
	}

	now := time.Now().Unix()
	if err := s.db.UpdateWalletBalances(
		ctx, wallet.Address, balance, snapshot.TotalStaked, snapshot.TotalRewards, now,
	); err != nil {
		return nil, 0, fmt.Errorf("failed to update wallet %s: %w", wallet.Address, err)
	}

	result.Updated = true
	log.Ctx(ctx).Debug().
		Str("address", wallet.Address).
		Float64("balance", balance).
		Float64("staked", snapshot.TotalStaked).
		Float64("rewards", snapshot.TotalRewards).
		Msg("Wallet balances updated")
	return result, snapshot.Apy, nil
}

func shortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8]
}
