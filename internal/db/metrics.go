package db

import (
	"context"
	"time"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewWallet(ctx context.Context, walletDoc *model.WalletDocument) error {
	return d.run("SaveNewWallet", func() error {
		return d.db.SaveNewWallet(ctx, walletDoc)
	})
}

func (d *DbWithMetrics) GetWalletByAddress(ctx context.Context, address string) (result *model.WalletDocument, err error) {
	//nolint:errcheck
	d.run("GetWalletByAddress", func() error {
		result, err = d.db.GetWalletByAddress(ctx, address)
		return err
	})
	return
}

func (d *DbWithMetrics) GetWalletsByUser(ctx context.Context, userID string) (result []*model.WalletDocument, err error) {
	//nolint:errcheck
	d.run("GetWalletsByUser", func() error {
		result, err = d.db.GetWalletsByUser(ctx, userID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateWalletBalances(ctx context.Context, address string, balance, staked, rewards float64, lastActivity int64) error {
	return d.run("UpdateWalletBalances", func() error {
		return d.db.UpdateWalletBalances(ctx, address, balance, staked, rewards, lastActivity)
	})
}

func (d *DbWithMetrics) InsertTransaction(ctx context.Context, txDoc *model.TransactionDocument) error {
	return d.run("InsertTransaction", func() error {
		return d.db.InsertTransaction(ctx, txDoc)
	})
}

func (d *DbWithMetrics) ConfirmTransaction(ctx context.Context, hash string, blockHeight int64, fee float64, gasUsed int64) (promoted bool, err error) {
	//nolint:errcheck
	d.run("ConfirmTransaction", func() error {
		promoted, err = d.db.ConfirmTransaction(ctx, hash, blockHeight, fee, gasUsed)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTransactionByHash(ctx context.Context, hash string) (result *model.TransactionDocument, err error) {
	//nolint:errcheck
	d.run("GetTransactionByHash", func() error {
		result, err = d.db.GetTransactionByHash(ctx, hash)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTransactionsByAddresses(ctx context.Context, addresses []string) (result []*model.TransactionDocument, err error) {
	//nolint:errcheck
	d.run("GetTransactionsByAddresses", func() error {
		result, err = d.db.GetTransactionsByAddresses(ctx, addresses)
		return err
	})
	return
}

func (d *DbWithMetrics) GetRecentTransactions(ctx context.Context, addresses []string, limit int64) (result []*model.TransactionDocument, err error) {
	//nolint:errcheck
	d.run("GetRecentTransactions", func() error {
		result, err = d.db.GetRecentTransactions(ctx, addresses, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertStakingAggregate(ctx context.Context, aggDoc *model.StakingAggregateDocument) error {
	return d.run("UpsertStakingAggregate", func() error {
		return d.db.UpsertStakingAggregate(ctx, aggDoc)
	})
}

func (d *DbWithMetrics) GetStakingAggregate(ctx context.Context, userID string) (result *model.StakingAggregateDocument, err error) {
	//nolint:errcheck
	d.run("GetStakingAggregate", func() error {
		result, err = d.db.GetStakingAggregate(ctx, userID)
		return err
	})
	return
}

func (d *DbWithMetrics) FindActiveUsers(ctx context.Context, since time.Time, limit int64) (result []*model.UserDocument, err error) {
	//nolint:errcheck
	d.run("FindActiveUsers", func() error {
		result, err = d.db.FindActiveUsers(ctx, since, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDBLatency(duration, method, err != nil)
	return err
}
