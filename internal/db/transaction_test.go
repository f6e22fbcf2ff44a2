//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
	"github.com/niloticlabs/nilotic-ledger-sync/testutil"
)

func TestTransactions(t *testing.T) {
	ctx := t.Context()

	t.Run("insert and get by hash", func(t *testing.T) {
		txDoc := testutil.RandomTransactionDocument(testutil.RandomAddress(), testutil.RandomAddress())
		require.NoError(t, testDB.InsertTransaction(ctx, txDoc))

		stored, err := testDB.GetTransactionByHash(ctx, txDoc.Hash)
		require.NoError(t, err)
		assert.Equal(t, txDoc, stored)
	})

	t.Run("duplicate hash", func(t *testing.T) {
		txDoc := testutil.RandomTransactionDocument(testutil.RandomAddress(), testutil.RandomAddress())
		require.NoError(t, testDB.InsertTransaction(ctx, txDoc))

		err := testDB.InsertTransaction(ctx, txDoc)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("confirm pending transaction", func(t *testing.T) {
		txDoc := testutil.RandomTransactionDocument(testutil.RandomAddress(), testutil.RandomAddress())
		txDoc.Status = types.StatusPending
		txDoc.BlockHeight = 0
		require.NoError(t, testDB.InsertTransaction(ctx, txDoc))

		promoted, err := testDB.ConfirmTransaction(ctx, txDoc.Hash, 42, 0.5, 21000)
		require.NoError(t, err)
		assert.True(t, promoted)

		stored, err := testDB.GetTransactionByHash(ctx, txDoc.Hash)
		require.NoError(t, err)
		assert.Equal(t, types.StatusConfirmed, stored.Status)
		assert.EqualValues(t, 42, stored.BlockHeight)
		assert.Equal(t, 0.5, stored.Fee)
		assert.EqualValues(t, 21000, stored.GasUsed)

		// a second confirmation matches nothing
		promoted, err = testDB.ConfirmTransaction(ctx, txDoc.Hash, 43, 0, 0)
		require.NoError(t, err)
		assert.False(t, promoted)

		// the first confirmation's metadata must survive
		stored, err = testDB.GetTransactionByHash(ctx, txDoc.Hash)
		require.NoError(t, err)
		assert.EqualValues(t, 42, stored.BlockHeight)
	})

	t.Run("confirm missing hash", func(t *testing.T) {
		promoted, err := testDB.ConfirmTransaction(ctx, "no-such-hash", 1, 0, 0)
		require.NoError(t, err)
		assert.False(t, promoted)
	})

	t.Run("query by addresses", func(t *testing.T) {
		addr := testutil.RandomAddress()
		other := testutil.RandomAddress()

		outgoing := testutil.RandomTransactionDocument(addr, other)
		outgoing.Timestamp = 1000
		incoming := testutil.RandomTransactionDocument(other, addr)
		incoming.Timestamp = 2000
		unrelated := testutil.RandomTransactionDocument(testutil.RandomAddress(), testutil.RandomAddress())

		require.NoError(t, testDB.InsertTransaction(ctx, outgoing))
		require.NoError(t, testDB.InsertTransaction(ctx, incoming))
		require.NoError(t, testDB.InsertTransaction(ctx, unrelated))

		txs, err := testDB.GetTransactionsByAddresses(ctx, []string{addr})
		require.NoError(t, err)
		require.Len(t, txs, 2)
		// newest first
		assert.Equal(t, incoming.Hash, txs[0].Hash)
		assert.Equal(t, outgoing.Hash, txs[1].Hash)

		recent, err := testDB.GetRecentTransactions(ctx, []string{addr}, 1)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, incoming.Hash, recent[0].Hash)
	})

	t.Run("empty address list", func(t *testing.T) {
		txs, err := testDB.GetTransactionsByAddresses(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})
}
