package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-note-sync/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(labelWidth)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	stateStyles = map[models.EngineState]lipgloss.Style{
		models.EngineStateDisabled: lipgloss.NewStyle().Faint(true),
		models.EngineStateOffline:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		models.EngineStateConflict: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		models.EngineStateError:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		models.EngineStateSyncing:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.EngineStateIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

const labelWidth = 18

func stateBadge(state models.EngineState) string {
	style, ok := stateStyles[state]
	if !ok {
		return string(state)
	}
	return style.Render(string(state))
}
