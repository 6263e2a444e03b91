package networks

import (
	"dcv/internal/docker"
	"dcv/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

func columns(width int) []table.Column {
	flexible := width - 14 - 10 - 14 - 3*2
	if flexible < 20 {
		flexible = 20
	}

	return []table.Column{
		{Title: "NAME", Width: flexible},
		{Title: "DRIVER", Width: 14},
		{Title: "SCOPE", Width: 10},
		{Title: "ID", Width: 14},
		{Title: "CREATED", Width: 14},
	}
}

func (m Model) syncTable() Model {
	rows := lo.Map(m.list.Visible(), func(n docker.NetworkSummary, _ int) table.Row {
		return table.Row{n.Name, n.Driver, n.Scope, n.ID, humanize.Time(n.Created)}
	})
	m.table.SetRows(rows)
	if m.list.Index() >= 0 {
		m.table.SetCursor(m.list.Index())
	}
	return m
}

// inspect resolves the attached containers of a network on a background
// task before the detail view is pushed.
func (m Model) inspect(id string) tea.Cmd {
	return func() tea.Msg {
		network, err := m.runtime.InspectNetwork(m.ctx, id)
		if err != nil {
			return messages.PollFailedMsg{Kind: "network inspect", Err: err}
		}
		return messages.ShowNetworkMsg{Network: network}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 2)
		m.table.SetColumns(columns(msg.Width))
		return m.syncTable(), nil

	case messages.NetworksRefreshedMsg:
		m.list.ApplyRefresh(msg.Networks)
		m.loading = false
		return m.syncTable(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.LineUp):
			m.list.Move(-1)
			return m.syncTable(), nil

		case key.Matches(msg, m.keys.LineDown):
			m.list.Move(1)
			return m.syncTable(), nil

		case key.Matches(msg, m.keys.Inspect):
			if selected, ok := m.list.Selected(); ok {
				return m, m.inspect(selected.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.loading {
		m.spinner, cmd = m.spinner.Update(msg)
	}
	return m, cmd
}
