package ledgerclient

import "context"

//go:generate mockery --name=LedgerInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_ledger_client.go
type LedgerInterface interface {
	// GetBalance returns the ledger's current balance of an address.
	GetBalance(ctx context.Context, address string) (float64, error)
	// ListTransactions returns the ledger's global transaction set. The node
	// has no per-address query; callers filter locally.
	ListTransactions(ctx context.Context) ([]ChainTransaction, error)
	// GetStakingSnapshot returns the ledger's staking view of an address.
	GetStakingSnapshot(ctx context.Context, address string) (*StakingSnapshot, error)
	// SubmitTransaction posts a new transaction to the node.
	SubmitTransaction(ctx context.Context, from, to string, amount float64) (*SubmitResult, error)
}
