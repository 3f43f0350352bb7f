package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-vector-console/internal/adapter"
	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/MKhiriev/go-vector-console/internal/logger"
)

type App struct {
	vectorStore adapter.VectorStoreAdapter
	ui          UI
	logger      *logger.Logger
	warnings    io.Writer
}

func NewApp(vectorStore adapter.VectorStoreAdapter, ui UI, log *logger.Logger) (*App, error) {
	if vectorStore == nil {
		return nil, errors.New("client: vector store adapter is required")
	}
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}

	return &App{
		vectorStore: vectorStore,
		ui:          ui,
		logger:      log,
		warnings:    os.Stderr,
	}, nil
}

// Run pings the server and starts the UI. A failed heartbeat is only a
// warning: every later call reports its own error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("endpoint", a.vectorStore.Endpoint()).Msg("console started")

	if err := a.vectorStore.Heartbeat(ctx); err != nil {
		a.logger.Warn().Err(err).Str("endpoint", a.vectorStore.Endpoint()).Msg("heartbeat failed")
		warning := fmt.Sprintf(app.MsgHeartbeatWarning, err)
		fmt.Fprintln(a.warnings, warning)
		a.ui.Warn(warning)
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("console stopped")
	return nil
}
