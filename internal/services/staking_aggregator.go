package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

// defaultApy is assumed when the ledger reports no rate for any of the
// user's wallets.
const defaultApy = 0.125

const daysPerYear = 365

// aggregateStaking recomputes the user's staking totals from the stored
// transaction history and upserts the aggregate row. The write is
// unconditional so that a stale aggregate never survives a pass.
func (s *Service) aggregateStaking(
	ctx context.Context,
	userID string,
	userAddrs map[string]bool,
	apy float64,
) error {
	addresses := make([]string, 0, len(userAddrs))
	for addr := range userAddrs {
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)

	txs, err := s.db.GetTransactionsByAddresses(ctx, addresses)
	if err != nil {
		return fmt.Errorf("failed to load transactions for staking aggregation: %w", err)
	}

	var totalStaked, totalRewards float64
	var stakingStart, lastReward int64

	for _, tx := range txs {
		switch tx.Type {
		case types.TypeStake:
			if !userAddrs[tx.From] {
				continue
			}
			totalStaked += tx.Amount
			if stakingStart == 0 || tx.Timestamp < stakingStart {
				stakingStart = tx.Timestamp
			}
		case types.TypeReward:
			if !userAddrs[tx.To] {
				continue
			}
			totalRewards += tx.Amount
			if tx.Timestamp > lastReward {
				lastReward = tx.Timestamp
			}
		}
	}

	if apy == 0 {
		apy = defaultApy
	}

	aggDoc := &model.StakingAggregateDocument{
		UserID:          userID,
		TotalStaked:     totalStaked,
		TotalRewards:    totalRewards,
		Tier:            types.TierForStaked(totalStaked),
		StakingStart:    stakingStart,
		LastReward:      lastReward,
		ProjectedReward: totalStaked * apy / daysPerYear,
		Apy:             apy,
		LastUpdated:     time.Now().Unix(),
	}
	if err := s.db.UpsertStakingAggregate(ctx, aggDoc); err != nil {
		return fmt.Errorf("failed to upsert staking aggregate for user %s: %w", userID, err)
	}

	log.Ctx(ctx).Debug().
		Str("user_id", userID).
		Float64("total_staked", totalStaked).
		Float64("total_rewards", totalRewards).
		Str("tier", aggDoc.Tier.String()).
		Msg("Staking aggregate recomputed")
	return nil
}
