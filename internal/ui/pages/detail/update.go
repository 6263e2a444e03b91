package detail

import (
	"fmt"

	"dcv/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.ContainerChangedMsg:
		// keep the detail in step with targeted refreshes
		if m.container != nil && m.container.ID == msg.ID && msg.Container != nil {
			m.container = msg.Container
		}
		return m, nil

	case tea.KeyMsg:
		if m.container == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Logs):
			selected := *m.container
			return m, func() tea.Msg { return messages.ShowLogsMsg{Container: selected} }

		case key.Matches(msg, m.keys.Open):
			if port := m.container.PublicPort(); port > 0 {
				browser.OpenURL(fmt.Sprintf("http://localhost:%d", port))
			}
			return m, nil
		}
	}

	return m, nil
}
