package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/clients/ledgerclient"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

func TestSubmitTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("records accepted transaction as pending", func(t *testing.T) {
		srv, dbClient, ledgerClient := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILabc").
			Return(&model.WalletDocument{Address: "NILabc", UserID: "user1", Kind: types.WalletKindNative}, nil).Once()
		ledgerClient.On("SubmitTransaction", mock.Anything, "NILabc", "NILdef", 10.0).
			Return(&ledgerclient.SubmitResult{Hash: "tx99", Timestamp: 1700000500}, nil).Once()
		dbClient.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(doc *model.TransactionDocument) bool {
			return doc.Hash == "tx99" &&
				doc.Status == types.StatusPending &&
				doc.Type == types.TypeTransfer &&
				doc.Amount == 10
		})).Return(nil).Once()

		txDoc, err := srv.SubmitTransaction(ctx, "user1", "NILabc", "NILdef", 10)
		require.NoError(t, err)
		assert.Equal(t, "tx99", txDoc.Hash)
		assert.Equal(t, types.StatusPending, txDoc.Status)
	})

	t.Run("stake submission is classified", func(t *testing.T) {
		srv, dbClient, ledgerClient := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILabc").
			Return(&model.WalletDocument{Address: "NILabc", UserID: "user1", Kind: types.WalletKindNative}, nil).Once()
		ledgerClient.On("SubmitTransaction", mock.Anything, "NILabc", "staking_pool_001", 50.0).
			Return(&ledgerclient.SubmitResult{Hash: "tx100", Timestamp: 1700000600}, nil).Once()
		dbClient.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(doc *model.TransactionDocument) bool {
			return doc.Type == types.TypeStake
		})).Return(nil).Once()

		txDoc, err := srv.SubmitTransaction(ctx, "user1", "NILabc", "staking_pool_001", 50)
		require.NoError(t, err)
		assert.Equal(t, types.TypeStake, txDoc.Type)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		srv, _, _ := testService(t)

		_, err := srv.SubmitTransaction(ctx, "user1", "NILabc", "NILdef", 0)
		require.ErrorIs(t, err, ErrInvalidAmount)

		_, err = srv.SubmitTransaction(ctx, "user1", "NILabc", "NILdef", -5)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects unknown sender wallet", func(t *testing.T) {
		srv, dbClient, _ := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILzzz").
			Return(nil, &db.NotFoundError{Key: "NILzzz"}).Once()

		_, err := srv.SubmitTransaction(ctx, "user1", "NILzzz", "NILdef", 10)
		require.ErrorIs(t, err, ErrWalletNotOwned)
	})

	t.Run("rejects wallet of another user", func(t *testing.T) {
		srv, dbClient, _ := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILabc").
			Return(&model.WalletDocument{Address: "NILabc", UserID: "user2", Kind: types.WalletKindNative}, nil).Once()

		_, err := srv.SubmitTransaction(ctx, "user1", "NILabc", "NILdef", 10)
		require.ErrorIs(t, err, ErrWalletNotOwned)
	})

	t.Run("rejects discovered external wallet as sender", func(t *testing.T) {
		srv, dbClient, _ := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILext").
			Return(&model.WalletDocument{Address: "NILext", UserID: "user1", Kind: types.WalletKindExternal}, nil).Once()

		_, err := srv.SubmitTransaction(ctx, "user1", "NILext", "NILdef", 10)
		require.ErrorIs(t, err, ErrWalletNotOwned)
	})

	t.Run("tolerates hash already stored", func(t *testing.T) {
		srv, dbClient, ledgerClient := testService(t)

		dbClient.On("GetWalletByAddress", mock.Anything, "NILabc").
			Return(&model.WalletDocument{Address: "NILabc", UserID: "user1", Kind: types.WalletKindNative}, nil).Once()
		ledgerClient.On("SubmitTransaction", mock.Anything, "NILabc", "NILdef", 10.0).
			Return(&ledgerclient.SubmitResult{Hash: "tx99", Timestamp: 1700000500}, nil).Once()
		dbClient.On("InsertTransaction", mock.Anything, mock.Anything).
			Return(&db.DuplicateKeyError{Key: "tx99"}).Once()

		txDoc, err := srv.SubmitTransaction(ctx, "user1", "NILabc", "NILdef", 10)
		require.NoError(t, err)
		assert.Equal(t, "tx99", txDoc.Hash)
	})
}
