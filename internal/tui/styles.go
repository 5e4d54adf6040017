package tui

import (
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)

	successBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dangerBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutralBadge = lipgloss.NewStyle().Faint(true)
)

// statusBadge renders a leave status in its display color bucket.
func statusBadge(status models.LeaveStatus) string {
	text := string(status)
	if text == "" {
		text = "-"
	}

	switch status.Color() {
	case models.ColorSuccess:
		return successBadge.Render(text)
	case models.ColorWarning:
		return warningBadge.Render(text)
	case models.ColorDanger:
		return dangerBadge.Render(text)
	default:
		return neutralBadge.Render(text)
	}
}
