package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vector-console/internal/adapter"
	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/MKhiriev/go-vector-console/internal/client"
	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/service"
	"github.com/MKhiriev/go-vector-console/internal/store"
	"github.com/MKhiriev/go-vector-console/internal/tui"
	"github.com/MKhiriev/go-vector-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("vector-console", cfg.Logger.File, cfg.Logger.Level)
	log.Debug().Str("backend", cfg.Adapter.Backend).Dur("request_timeout", cfg.Adapter.RequestTimeout).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	switch {
	case errors.Is(err, tui.ErrUserQuit):
		fmt.Println(app.MsgExiting)
	case err != nil:
		log.Error().Err(err).Msg("console run error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	default:
		fmt.Println(app.MsgGoodbye)
	}
}

func run(ctx context.Context, cfg *config.ConsoleConfig, log *logger.Logger) error {
	vectorStore, err := adapter.NewVectorStoreAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create vector store adapter: %w", err)
	}
	defer func() {
		if closeErr := vectorStore.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close vector store adapter")
		}
	}()

	storages, err := store.NewConsoleStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create console storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close console storages")
		}
	}()

	services := service.NewServices(vectorStore, storages.Journal, cfg.Adapter.Backend)

	ui, err := tui.New(services, vectorStore.Endpoint(), buildInfo(), log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	console, err := client.NewApp(vectorStore, ui, log)
	if err != nil {
		return fmt.Errorf("init console app error: %w", err)
	}

	return console.Run(ctx)
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(app.AppName, orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
