package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run restores the persisted session, runs the login flow when no session
// survived, then hands control to the main loop. A logout loops back to the
// login screen; [tui.ErrUserQuit] is a normal exit.
func (a *App) Run() error {
	ctx := context.Background()

	// best effort: a failed restore degrades to the login screen
	if err := a.services.SessionService.Initialize(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("session restore failed")
	}

	for {
		if !a.services.SessionService.State().LoggedIn() {
			if err := a.tui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.SessionService.Logout(ctx); err != nil {
			// memory is already cleared; only the durable delete failed
			a.logger.Warn().Err(err).Msg("logout left durable session data behind")
		}
	}
}
