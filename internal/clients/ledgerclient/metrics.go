package ledgerclient

import (
	"context"
	"time"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
)

type ledgerClientWithMetrics struct {
	ledger LedgerInterface
}

func NewLedgerClientWithMetrics(ledger LedgerInterface) LedgerInterface {
	return &ledgerClientWithMetrics{ledger: ledger}
}

func (l *ledgerClientWithMetrics) GetBalance(ctx context.Context, address string) (float64, error) {
	return runLedgerClientMethodWithMetrics("GetBalance", func() (float64, error) {
		return l.ledger.GetBalance(ctx, address)
	})
}

func (l *ledgerClientWithMetrics) ListTransactions(ctx context.Context) ([]ChainTransaction, error) {
	return runLedgerClientMethodWithMetrics("ListTransactions", func() ([]ChainTransaction, error) {
		return l.ledger.ListTransactions(ctx)
	})
}

func (l *ledgerClientWithMetrics) GetStakingSnapshot(ctx context.Context, address string) (*StakingSnapshot, error) {
	return runLedgerClientMethodWithMetrics("GetStakingSnapshot", func() (*StakingSnapshot, error) {
		return l.ledger.GetStakingSnapshot(ctx, address)
	})
}

func (l *ledgerClientWithMetrics) SubmitTransaction(ctx context.Context, from, to string, amount float64) (*SubmitResult, error) {
	return runLedgerClientMethodWithMetrics("SubmitTransaction", func() (*SubmitResult, error) {
		return l.ledger.SubmitTransaction(ctx, from, to, amount)
	})
}

func runLedgerClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordLedgerClientLatency(duration, method, err != nil)
	return v, err
}
