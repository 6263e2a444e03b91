package logs

import (
	"fmt"
	"strings"

	"dcv/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	title := fmt.Sprintf(" Logs: %s (%s) ", m.container.Name, m.container.ID)
	position := fmt.Sprintf("%d-%d/%d", m.buffer.Offset()+1, m.buffer.Offset()+len(m.buffer.Window()), m.buffer.Len())
	if m.buffer.Len() == 0 {
		position = "0/0"
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		styles.TitleStyle.Render(title),
		styles.DimStyle.Render(" "+position),
	)
	if m.ended {
		notice := "stream ended"
		if m.openErr != nil {
			notice = fmt.Sprintf("stream failed: %v", m.openErr)
		}
		header = lipgloss.JoinHorizontal(lipgloss.Left, header, styles.RedStyle.Render("  ["+notice+" - esc to go back]"))
	}

	body := strings.Join(m.renderWindow(), "\n")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		lipgloss.NewStyle().Height(viewportHeight(m.height)).Render(body),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render(m.help.View(m.keys))),
	)
}

func (m Model) renderWindow() []string {
	out := make([]string, 0, len(m.buffer.Window()))
	for _, entry := range m.buffer.Window() {
		text := runewidth.Truncate(entry.Text, m.width, "…")
		if entry.Source == "stderr" {
			text = styles.StderrStyle.Render(text)
		}
		out = append(out, text)
	}
	return out
}
