package model

import "github.com/niloticlabs/nilotic-ledger-sync/internal/types"

const WalletCollection = "wallets"

type WalletDocument struct {
	// Address is assigned by the ledger node and globally unique.
	Address      string           `bson:"_id"`
	UserID       string           `bson:"user_id"`
	Name         string           `bson:"name"`
	Kind         types.WalletKind `bson:"kind"`
	IsPrimary    bool             `bson:"is_primary"`
	Balance      float64          `bson:"balance"`
	Staked       float64          `bson:"staked"`
	Rewards      float64          `bson:"rewards"`
	LastActivity int64            `bson:"last_activity"` // unix seconds
}
