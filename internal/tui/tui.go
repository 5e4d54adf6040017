package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		validator: validators.NewLeaveTrackerValidator(),
	}, nil
}

// LoginFlow runs the login screen until a session is established. Returns
// [ErrUserQuit] when the user leaves without logging in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginModel(ctx, t.services.SessionService, t.validator)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(*loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the leave list screen until the user quits or logs out. The
// caller is responsible for actually clearing the session when logout is
// reported.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.validator)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
