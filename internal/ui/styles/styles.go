package styles

import (
	"github.com/charmbracelet/lipgloss"

	"dcv/internal/docker"
)

var RedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
var GreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
var YellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
var SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
var HelpBarStyle = lipgloss.NewStyle().Padding(0, 1)
var StatusBarStyle = lipgloss.NewStyle().Padding(0, 1)
var StatusErrorStyle = StatusBarStyle.Foreground(lipgloss.Color("1"))
var TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
var TabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
var TabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
var LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
var StderrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// ForState colors a container lifecycle state the way the tables render it.
func ForState(state docker.State) lipgloss.Style {
	switch state {
	case docker.StateRunning:
		return GreenStyle
	case docker.StatePaused, docker.StateRestarting:
		return YellowStyle
	case docker.StateDead:
		return RedStyle
	default:
		return DimStyle
	}
}
