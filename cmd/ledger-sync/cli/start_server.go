package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/api"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/clients/ledgerclient"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	dbmodel "github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/metrics"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/observability/tracing"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the ledger sync engine and its management API",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger sync db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var ledgerClient ledgerclient.LedgerInterface
	ledgerClient = ledgerclient.NewLedgerClient(&cfg.Ledger)
	ledgerClient = ledgerclient.NewLedgerClientWithMetrics(ledgerClient)

	service := services.NewService(cfg, dbClient, ledgerClient)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartSyncEngine(ctx)

	apiServer := api.New(&cfg.Api, service, dbClient)
	go func() {
		<-ctx.Done()
		if err := apiServer.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("error while shutting down management API server")
		}
	}()

	return apiServer.Start()
}
