package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/services"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server exposes the sync management surface and a few read endpoints over
// the cached data.
type Server struct {
	httpServer *http.Server
	service    *services.Service
	db         db.DbInterface
}

func New(cfg *config.ApiConfig, service *services.Service, dbClient db.DbInterface) *Server {
	server := &Server{
		service: service,
		db:      dbClient,
	}
	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      server.routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return server
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthcheck", s.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/sync/{userID}", func(r chi.Router) {
			r.Post("/start", s.handleSyncStart)
			r.Post("/stop", s.handleSyncStop)
			r.Post("/force", s.handleSyncForce)
			r.Get("/status", s.handleSyncStatus)
		})

		r.Route("/background", func(r chi.Router) {
			r.Post("/start", s.handleBackgroundStart)
			r.Post("/stop", s.handleBackgroundStop)
			r.Post("/force", s.handleBackgroundForce)
			r.Get("/status", s.handleBackgroundStatus)
			r.Patch("/config", s.handleBackgroundConfig)
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/wallets", s.handleGetWallets)
			r.Get("/transactions", s.handleGetTransactions)
			r.Get("/staking", s.handleGetStaking)
		})

		r.Post("/transactions", s.handleSubmitTransaction)
		r.Get("/transactions/{hash}", s.handleGetTransaction)
	})

	return r
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("Starting management API server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("management API server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, codeInternal, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
