package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

var (
	// ErrWalletNotOwned is returned when the sender wallet does not belong
	// to the submitting user.
	ErrWalletNotOwned = errors.New("sender wallet does not belong to user")
	// ErrInvalidAmount is returned for zero or negative submission amounts.
	ErrInvalidAmount = errors.New("transaction amount must be positive")
)

// SubmitTransaction hands a transfer to the ledger node and records it
// locally as pending. Reconciliation later promotes the row to confirmed
// when the transaction appears on chain. This is the only code path that
// writes a pending row.
func (s *Service) SubmitTransaction(
	ctx context.Context, userID, from, to string, amount float64,
) (*model.TransactionDocument, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.db.GetWalletByAddress(ctx, from)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, ErrWalletNotOwned
		}
		return nil, fmt.Errorf("failed to load sender wallet %s: %w", from, err)
	}
	if wallet.UserID != userID || wallet.Kind == types.WalletKindExternal {
		return nil, ErrWalletNotOwned
	}

	result, err := s.ledger.SubmitTransaction(ctx, from, to, amount)
	if err != nil {
		return nil, fmt.Errorf("ledger rejected transaction: %w", err)
	}

	userAddrs := map[string]bool{from: true}
	txDoc := &model.TransactionDocument{
		Hash:      result.Hash,
		From:      from,
		To:        to,
		Amount:    amount,
		Type:      types.Classify(from, to, userAddrs),
		Status:    types.StatusPending,
		Timestamp: result.Timestamp,
	}
	if err := s.db.InsertTransaction(ctx, txDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			// The node accepted and mined it before we wrote the row; the
			// next pass reconciles the stored copy.
			log.Ctx(ctx).Info().
				Str("hash", result.Hash).
				Msg("Submitted transaction already stored")
			return txDoc, nil
		}
		return nil, fmt.Errorf("failed to record submitted transaction %s: %w", result.Hash, err)
	}

	log.Ctx(ctx).Info().
		Str("user_id", userID).
		Str("hash", result.Hash).
		Str("from", from).
		Str("to", to).
		Float64("amount", amount).
		Msg("Transaction submitted to ledger")
	return txDoc, nil
}
