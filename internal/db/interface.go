package db

import (
	"context"
	"time"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	SaveNewWallet(ctx context.Context, walletDoc *model.WalletDocument) error
	GetWalletByAddress(ctx context.Context, address string) (*model.WalletDocument, error)
	GetWalletsByUser(ctx context.Context, userID string) ([]*model.WalletDocument, error)
	UpdateWalletBalances(ctx context.Context, address string, balance, staked, rewards float64, lastActivity int64) error

	InsertTransaction(ctx context.Context, txDoc *model.TransactionDocument) error
	ConfirmTransaction(ctx context.Context, hash string, blockHeight int64, fee float64, gasUsed int64) (bool, error)
	GetTransactionByHash(ctx context.Context, hash string) (*model.TransactionDocument, error)
	GetTransactionsByAddresses(ctx context.Context, addresses []string) ([]*model.TransactionDocument, error)
	GetRecentTransactions(ctx context.Context, addresses []string, limit int64) ([]*model.TransactionDocument, error)

	UpsertStakingAggregate(ctx context.Context, aggDoc *model.StakingAggregateDocument) error
	GetStakingAggregate(ctx context.Context, userID string) (*model.StakingAggregateDocument, error)

	FindActiveUsers(ctx context.Context, since time.Time, limit int64) ([]*model.UserDocument, error)
}
