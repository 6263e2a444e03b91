package networks

import (
	"fmt"

	"dcv/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.loading {
		spinner := fmt.Sprintf("%s Loading networks", m.spinner.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, spinner)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left, m.table.View(),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render(m.help.View(m.keys))),
	)
}
