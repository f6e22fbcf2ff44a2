package ledgerclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
)

func testClient(t *testing.T, handler http.Handler) *LedgerClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewLedgerClient(&config.LedgerConfig{
		Endpoint:      server.URL,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 2,
		RetryInterval: 10 * time.Millisecond,
	})
}

func TestLedgerClient_GetBalance(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balance/NILabc", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"address": "NILabc",
			"balance": 42.25,
		})
	}))

	balance, err := client.GetBalance(context.Background(), "NILabc")
	require.NoError(t, err)
	assert.Equal(t, 42.25, balance)
}

func TestLedgerClient_GetBalance_Retries(t *testing.T) {
	var calls int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"balance": 7.0})
	}))

	balance, err := client.GetBalance(context.Background(), "NILabc")
	require.NoError(t, err)
	assert.Equal(t, 7.0, balance)
	assert.Equal(t, 2, calls)
}

func TestLedgerClient_ListTransactions(t *testing.T) {
	chain := []map[string]any{
		{"index": 0, "hash": "genesis", "timestamp": 1700000000, "data": "Genesis Block"},
		{
			"index": 1, "hash": "block1", "timestamp": 1700000100,
			"data": `{"type":"transaction","hash":"tx1","sender":"NILabc","recipient":"staking_pool_001","amount":200,"timestamp":1700000100}`,
		},
		{
			"index": 2, "hash": "block2", "timestamp": 1700000200,
			"data": `{"type":"mining_reward","miner":"NILabc","reward":50}`,
		},
		{
			// no embedded hash: falls back to the block hash
			"index": 3, "hash": "block3", "timestamp": 1700000300,
			"data": `{"type":"transaction","sender":"NILabc","recipient":"NILdef","amount":10,"timestamp":1700000300}`,
		},
		{
			// damaged beyond use: both parties unknown
			"index": 4, "hash": "block4", "timestamp": 1700000400,
			"data": `{"type":"transac`,
		},
	}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chain", r.URL.Path)
		_ = json.NewEncoder(w).Encode(chain)
	}))

	txs, err := client.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, ChainTransaction{
		Hash:        "tx1",
		From:        "NILabc",
		To:          "staking_pool_001",
		Amount:      200,
		Timestamp:   1700000100,
		BlockHeight: 1,
	}, txs[0])

	assert.Equal(t, "coinbase", txs[1].From)
	assert.Equal(t, "NILabc", txs[1].To)
	assert.Equal(t, 50.0, txs[1].Amount)
	assert.Equal(t, "block2", txs[1].Hash)
	// mining reward payload carries no timestamp of its own
	assert.Equal(t, int64(1700000200), txs[1].Timestamp)

	assert.Equal(t, "block3", txs[2].Hash)
	assert.Equal(t, "NILdef", txs[2].To)
}

func TestLedgerClient_GetStakingSnapshot(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staking/info/NILabc", r.URL.Path)
		_ = json.NewEncoder(w).Encode(StakingSnapshot{
			TotalStaked:  200,
			TotalRewards: 25,
			Apy:          0.125,
			Since:        1700000000,
		})
	}))

	snapshot, err := client.GetStakingSnapshot(context.Background(), "NILabc")
	require.NoError(t, err)
	assert.Equal(t, 200.0, snapshot.TotalStaked)
	assert.Equal(t, 0.125, snapshot.Apy)
}

func TestLedgerClient_SubmitTransaction(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/transaction", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "NILabc", body["sender"])
			assert.Equal(t, "NILdef", body["recipient"])
			assert.Equal(t, 10.0, body["amount"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(SubmitResult{Hash: "tx99", Timestamp: 1700000500})
		}))

		result, err := client.SubmitTransaction(context.Background(), "NILabc", "NILdef", 10)
		require.NoError(t, err)
		assert.Equal(t, "tx99", result.Hash)
	})

	t.Run("accepted without hash is an error", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(SubmitResult{})
		}))

		_, err := client.SubmitTransaction(context.Background(), "NILabc", "NILdef", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no hash")
	})
}
