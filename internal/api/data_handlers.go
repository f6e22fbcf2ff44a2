package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/services"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 500
)

func (s *Server) handleGetWallets(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	wallets, err := s.db.GetWalletsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to load wallets")
		return
	}
	writeJSON(w, http.StatusOK, wallets)
}

func (s *Server) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit := int64(defaultTransactionLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > maxTransactionLimit {
			writeError(w, http.StatusBadRequest, codeBadRequest,
				"limit must be between 1 and "+strconv.Itoa(maxTransactionLimit))
			return
		}
		limit = parsed
	}

	wallets, err := s.db.GetWalletsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to load wallets")
		return
	}
	addresses := make([]string, 0, len(wallets))
	for _, wallet := range wallets {
		addresses = append(addresses, wallet.Address)
	}

	txs, err := s.db.GetRecentTransactions(r.Context(), addresses, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to load transactions")
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleGetStaking(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	aggregate, err := s.db.GetStakingAggregate(r.Context(), userID)
	if err != nil {
		if db.IsNotFoundError(err) {
			writeError(w, http.StatusNotFound, codeNotFound, "no staking aggregate for user")
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to load staking aggregate")
		return
	}
	writeJSON(w, http.StatusOK, aggregate)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	txDoc, err := s.db.GetTransactionByHash(r.Context(), hash)
	if err != nil {
		if db.IsNotFoundError(err) {
			writeError(w, http.StatusNotFound, codeNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternal, "failed to load transaction")
		return
	}
	writeJSON(w, http.StatusOK, txDoc)
}

type submitTransactionRequest struct {
	UserID string  `json:"user_id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" || req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "user_id, from and to are required")
		return
	}

	txDoc, err := s.service.SubmitTransaction(r.Context(), req.UserID, req.From, req.To, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		case errors.Is(err, services.ErrWalletNotOwned):
			writeError(w, http.StatusForbidden, codeBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadGateway, codeInternal, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, txDoc)
}
