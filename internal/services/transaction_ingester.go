package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/clients/ledgerclient"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

// Ingest results recorded per transaction.
const (
	IngestNew       = "new"
	IngestUpdated   = "updated"
	IngestUnchanged = "unchanged"
	IngestRejected  = "rejected"
	IngestFailed    = "failed"
)

type TransactionIngestResult struct {
	Hash   string
	Result string
}

// ingestTransactions stores the ledger transactions touching the user's
// wallets. A hash seen for the first time is inserted as confirmed; a hash
// already stored as pending is promoted to confirmed with its block metadata
// backfilled; a hash already confirmed is left alone.
func (s *Service) ingestTransactions(
	ctx context.Context,
	userAddrs map[string]bool,
	ledgerTxs []ledgerclient.ChainTransaction,
) []TransactionIngestResult {
	var results []TransactionIngestResult
	counts := make(map[string]int)

	for _, tx := range ledgerTxs {
		if !userAddrs[tx.From] && !userAddrs[tx.To] {
			continue
		}
		if tx.Amount < 0 {
			// The node never emits negative amounts; a salvaged payload
			// might. Refuse to store it rather than corrupt the history.
			log.Ctx(ctx).Warn().
				Str("hash", tx.Hash).
				Float64("amount", tx.Amount).
				Msg("Rejecting ledger transaction with negative amount")
			results = append(results, TransactionIngestResult{Hash: tx.Hash, Result: IngestRejected})
			counts[IngestRejected]++
			continue
		}

		result, err := s.ingestOne(ctx, userAddrs, tx)
		if err != nil {
			// a lost write is retried on the next pass, the hash key makes
			// the retry idempotent
			log.Ctx(ctx).Error().Err(err).
				Str("hash", tx.Hash).
				Msg("Failed to store ledger transaction, continuing with remaining transactions")
			result = IngestFailed
		}
		results = append(results, TransactionIngestResult{Hash: tx.Hash, Result: result})
		counts[result]++
	}

	for result, count := range counts {
		metrics.RecordTransactionsIngested(result, count)
	}
	return results
}

func (s *Service) ingestOne(
	ctx context.Context,
	userAddrs map[string]bool,
	tx ledgerclient.ChainTransaction,
) (string, error) {
	txDoc := &model.TransactionDocument{
		Hash:        tx.Hash,
		From:        tx.From,
		To:          tx.To,
		Amount:      tx.Amount,
		Type:        types.Classify(tx.From, tx.To, userAddrs),
		Status:      types.StatusConfirmed,
		Timestamp:   tx.Timestamp,
		BlockHeight: tx.BlockHeight,
		Fee:         tx.Fee,
		GasUsed:     tx.GasUsed,
	}

	err := s.db.InsertTransaction(ctx, txDoc)
	if err == nil {
		return IngestNew, nil
	}
	if !db.IsDuplicateKeyError(err) {
		return "", fmt.Errorf("failed to insert transaction %s: %w", tx.Hash, err)
	}

	// Known hash. Promote a pending row to confirmed; a row already
	// confirmed matches this filter on nothing and stays untouched.
	promoted, err := s.db.ConfirmTransaction(ctx, tx.Hash, tx.BlockHeight, tx.Fee, tx.GasUsed)
	if err != nil {
		return "", fmt.Errorf("failed to confirm transaction %s: %w", tx.Hash, err)
	}
	if promoted {
		log.Ctx(ctx).Debug().
			Str("hash", tx.Hash).
			Int64("block_height", tx.BlockHeight).
			Msg("Pending transaction confirmed on chain")
		return IngestUpdated, nil
	}
	return IngestUnchanged, nil
}
