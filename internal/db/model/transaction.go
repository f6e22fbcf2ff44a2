package model

import "github.com/niloticlabs/nilotic-ledger-sync/internal/types"

const TransactionCollection = "transactions"

// TransactionDocument stores one row per ledger transaction hash, even when
// both sides belong to the same user. Amount, hash, from and to are immutable
// once written; only status and block metadata may change afterwards.
type TransactionDocument struct {
	Hash        string                  `bson:"_id"`
	From        string                  `bson:"from"`
	To          string                  `bson:"to"`
	Amount      float64                 `bson:"amount"`
	Type        types.TransactionType   `bson:"type"`
	Status      types.TransactionStatus `bson:"status"`
	Timestamp   int64                   `bson:"timestamp"` // unix seconds
	BlockHeight int64                   `bson:"block_height,omitempty"`
	Fee         float64                 `bson:"fee,omitempty"`
	GasUsed     int64                   `bson:"gas_used,omitempty"`
}
