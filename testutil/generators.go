package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
	"github.com/niloticlabs/nilotic-ledger-sync/pkg"
)

// RandomAddress returns an address in the ledger's "NIL" + hex format.
func RandomAddress() string {
	return "NIL" + gofakeit.HexUint(128)[2:]
}

// RandomTxHash returns a hex string shaped like a ledger transaction hash.
func RandomTxHash() string {
	return gofakeit.HexUint(256)[2:]
}

func RandomWalletDocument(userID string) *model.WalletDocument {
	return &model.WalletDocument{
		Address:      RandomAddress(),
		UserID:       userID,
		Name:         "wallet-" + pkg.RandString(6),
		Kind:         types.WalletKindNative,
		Balance:      gofakeit.Float64Range(0, 10_000),
		Staked:       gofakeit.Float64Range(0, 1_000),
		Rewards:      gofakeit.Float64Range(0, 100),
		LastActivity: gofakeit.DateRange(time.Unix(1600000000, 0), time.Now()).Unix(),
	}
}

func RandomTransactionDocument(from, to string) *model.TransactionDocument {
	return &model.TransactionDocument{
		Hash:        RandomTxHash(),
		From:        from,
		To:          to,
		Amount:      gofakeit.Float64Range(0.01, 500),
		Type:        types.TypeTransfer,
		Status:      types.StatusConfirmed,
		Timestamp:   gofakeit.DateRange(time.Unix(1600000000, 0), time.Now()).Unix(),
		BlockHeight: int64(gofakeit.IntRange(1, 100_000)),
	}
}

func RandomUserDocument() *model.UserDocument {
	return &model.UserDocument{
		ID:        gofakeit.UUID(),
		Email:     gofakeit.Email(),
		LastLogin: time.Now().Unix(),
	}
}
