package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/service"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/internal/tui"
)

// App ties client services and the terminal UI into one process lifecycle.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client application from already constructed parts.
func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the locally cached session or walks the player through the
// login flow, then hands control to the main loop. A logout from the main
// loop starts the cycle over; quitting the program exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	logout, err := a.ui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
