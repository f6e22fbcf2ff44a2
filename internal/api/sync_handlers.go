package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/tracing"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/services"
)

func (s *Server) handleSyncStart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "userID is required")
		return
	}

	s.service.Sync.Start(tracing.InjectTraceID(r.Context()), userID)
	writeJSON(w, http.StatusAccepted, map[string]string{"user_id": userID, "state": "started"})
}

func (s *Server) handleSyncStop(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "userID is required")
		return
	}

	s.service.Sync.Stop(tracing.InjectTraceID(r.Context()), userID)
	writeJSON(w, http.StatusOK, map[string]string{"user_id": userID, "state": "stopped"})
}

func (s *Server) handleSyncForce(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "userID is required")
		return
	}

	result, err := s.service.Sync.Force(tracing.InjectTraceID(r.Context()), userID)
	if err != nil {
		if errors.Is(err, services.ErrSyncInProgress) {
			writeError(w, http.StatusConflict, codeConflict, "a reconciliation pass is already running")
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":      userID,
		"duration_ms":  result.Duration.Milliseconds(),
		"wallets":      result.WalletCount(),
		"transactions": result.TransactionCount(),
	})
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	status, ok := s.service.Sync.Status(userID)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "no sync coordinator for user")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleBackgroundStart(w http.ResponseWriter, r *http.Request) {
	s.service.Background.Start(tracing.InjectTraceID(r.Context()))
	writeJSON(w, http.StatusAccepted, map[string]string{"state": "started"})
}

func (s *Server) handleBackgroundStop(w http.ResponseWriter, r *http.Request) {
	s.service.Background.Stop(tracing.InjectTraceID(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"state": "stopped"})
}

func (s *Server) handleBackgroundForce(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Background.Force(tracing.InjectTraceID(r.Context())); err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.service.Background.Status())
}

func (s *Server) handleBackgroundStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Background.Status())
}

// backgroundConfigRequest is the PATCH body; durations are given in
// milliseconds so callers do not need Go duration syntax.
type backgroundConfigRequest struct {
	ActiveWindowMs   *int64 `json:"active_window_ms"`
	MaxUsersPerSweep *int64 `json:"max_users_per_sweep"`
	BatchSize        *int   `json:"batch_size"`
	BatchDelayMs     *int64 `json:"batch_delay_ms"`
	RetryAttempts    *uint  `json:"retry_attempts"`
	RetryDelayMs     *int64 `json:"retry_delay_ms"`
}

func (s *Server) handleBackgroundConfig(w http.ResponseWriter, r *http.Request) {
	var req backgroundConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON body")
		return
	}

	update := services.BackgroundConfigUpdate{
		MaxUsersPerSweep: req.MaxUsersPerSweep,
		BatchSize:        req.BatchSize,
		RetryAttempts:    req.RetryAttempts,
	}
	if req.ActiveWindowMs != nil {
		if *req.ActiveWindowMs <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "active_window_ms must be positive")
			return
		}
		window := time.Duration(*req.ActiveWindowMs) * time.Millisecond
		update.ActiveWindow = &window
	}
	if req.BatchDelayMs != nil {
		if *req.BatchDelayMs <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "batch_delay_ms must be positive")
			return
		}
		delay := time.Duration(*req.BatchDelayMs) * time.Millisecond
		update.BatchDelay = &delay
	}
	if req.RetryDelayMs != nil {
		if *req.RetryDelayMs <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "retry_delay_ms must be positive")
			return
		}
		retryDelay := time.Duration(*req.RetryDelayMs) * time.Millisecond
		update.RetryDelay = &retryDelay
	}
	if req.RetryAttempts != nil && *req.RetryAttempts == 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "retry_attempts must be positive")
		return
	}
	if req.MaxUsersPerSweep != nil && *req.MaxUsersPerSweep <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "max_users_per_sweep must be positive")
		return
	}
	if req.BatchSize != nil && *req.BatchSize <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "batch_size must be positive")
		return
	}

	writeJSON(w, http.StatusOK, s.service.Background.UpdateConfig(update))
}
