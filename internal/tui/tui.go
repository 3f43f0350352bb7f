package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/service"
	"github.com/MKhiriev/go-vector-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user interrupted the program
// with ctrl+c.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	endpoint  string
	buildInfo models.AppBuildInfo
	notice    string
	logger    *logger.Logger
}

func New(services *service.Services, endpoint string, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, endpoint: endpoint, buildInfo: buildInfo, logger: log}, nil
}

// Warn sets a notice printed above the main menu when the UI starts.
func (t *TUI) Warn(notice string) {
	t.notice = notice
}

// Run blocks until the user exits. It returns nil when "Exit" was chosen and
// [ErrUserQuit] on interrupt.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	model := newAppModel(ctx, t.services, t.endpoint, t.buildInfo)
	model.output = t.notice

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
