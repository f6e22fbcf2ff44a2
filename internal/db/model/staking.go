package model

import "github.com/niloticlabs/nilotic-ledger-sync/internal/types"

const StakingAggregateCollection = "staking_aggregates"

// StakingAggregateDocument holds the per-user staking totals. It is
// recomputed wholesale from the transaction history on every pass, so a
// partially failed pass converges on the next one.
type StakingAggregateDocument struct {
	UserID          string     `bson:"_id"`
	TotalStaked     float64    `bson:"total_staked"`
	TotalRewards    float64    `bson:"total_rewards"`
	Tier            types.Tier `bson:"tier"`
	StakingStart    int64      `bson:"staking_start,omitempty"` // unix seconds, zero when the user never staked
	LastReward      int64      `bson:"last_reward,omitempty"`   // unix seconds, zero when no reward seen
	ProjectedReward float64    `bson:"projected_reward"`
	Apy             float64    `bson:"apy"`
	LastUpdated     int64      `bson:"last_updated"`
}
