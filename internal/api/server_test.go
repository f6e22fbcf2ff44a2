package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/services"
	"github.com/niloticlabs/nilotic-ledger-sync/tests/mocks"
)

func testServer(t *testing.T) (*Server, *mocks.DbInterface, *mocks.LedgerInterface) {
	t.Helper()

	cfg := &config.Config{
		Api: config.ApiConfig{Host: "127.0.0.1", Port: 8090},
		Sync: config.SyncConfig{
			Interval:           time.Minute,
			BackgroundInterval: time.Minute,
			ActiveWindow:       time.Hour,
			MaxUsersPerSweep:   100,
			BatchSize:          2,
			BatchDelay:         time.Millisecond,
			RetryAttempts:      1,
			RetryDelay:         time.Millisecond,
		},
	}

	dbClient := mocks.NewDbInterface(t)
	ledgerClient := mocks.NewLedgerInterface(t)
	service := services.NewService(cfg, dbClient, ledgerClient)
	return New(&cfg.Api, service, dbClient), dbClient, ledgerClient
}

func doRequest(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, req)
	return recorder
}

func TestHealthcheck(t *testing.T) {
	server, dbClient, _ := testServer(t)
	dbClient.On("Ping", mock.Anything).Return(nil).Once()

	recorder := doRequest(t, server, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestSyncStatus_UnknownUser(t *testing.T) {
	server, _, _ := testServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/v1/sync/user1/status", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBackgroundStatus(t *testing.T) {
	server, _, _ := testServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/v1/background/status", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"running":false`)
}

func TestBackgroundConfigPatch(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		server, _, _ := testServer(t)

		recorder := doRequest(t, server, http.MethodPatch, "/v1/background/config",
			`{"batch_size": 9}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"batch_size":9`)
		// untouched setting keeps its configured value
		assert.Contains(t, recorder.Body.String(), `"max_users_per_sweep":100`)
	})

	t.Run("retry knobs", func(t *testing.T) {
		server, _, _ := testServer(t)

		recorder := doRequest(t, server, http.MethodPatch, "/v1/background/config",
			`{"retry_attempts": 4, "retry_delay_ms": 250}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"retry_attempts":4`)
		assert.Contains(t, recorder.Body.String(), `"retry_delay":250000000`)
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		server, _, _ := testServer(t)

		recorder := doRequest(t, server, http.MethodPatch, "/v1/background/config",
			`{"batch_size": 0}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = doRequest(t, server, http.MethodPatch, "/v1/background/config",
			`{"retry_attempts": 0}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		server, _, _ := testServer(t)

		recorder := doRequest(t, server, http.MethodPatch, "/v1/background/config", `{`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetTransaction(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server, dbClient, _ := testServer(t)
		dbClient.On("GetTransactionByHash", mock.Anything, "tx1").
			Return(&model.TransactionDocument{Hash: "tx1", Amount: 10}, nil).Once()

		recorder := doRequest(t, server, http.MethodGet, "/v1/transactions/tx1", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "tx1")
	})

	t.Run("not found", func(t *testing.T) {
		server, dbClient, _ := testServer(t)
		dbClient.On("GetTransactionByHash", mock.Anything, "missing").
			Return(nil, &db.NotFoundError{Key: "missing"}).Once()

		recorder := doRequest(t, server, http.MethodGet, "/v1/transactions/missing", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSubmitTransactionEndpoint(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		server, _, _ := testServer(t)

		recorder := doRequest(t, server, http.MethodPost, "/v1/transactions",
			`{"user_id":"user1","from":"NILabc"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("foreign wallet is forbidden", func(t *testing.T) {
		server, dbClient, _ := testServer(t)
		dbClient.On("GetWalletByAddress", mock.Anything, "NILabc").
			Return(&model.WalletDocument{Address: "NILabc", UserID: "user2"}, nil).Once()

		recorder := doRequest(t, server, http.MethodPost, "/v1/transactions",
			`{"user_id":"user1","from":"NILabc","to":"NILdef","amount":10}`)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestGetTransactionsLimitValidation(t *testing.T) {
	server, _, _ := testServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/v1/users/user1/transactions?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, server, http.MethodGet, "/v1/users/user1/transactions?limit=9999", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
