package containers

import (
	"fmt"
	"strings"

	"dcv/internal/docker"
	"dcv/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/pkg/browser"
	"github.com/samber/lo"
)

func columns(width int) []table.Column {
	// Created and State are fixed; the rest share the remainder.
	flexible := width - 12 - 14 - 4*2
	if flexible < 40 {
		flexible = 40
	}
	name := flexible * 30 / 100
	image := flexible * 30 / 100
	status := flexible * 20 / 100
	ports := flexible - name - image - status

	return []table.Column{
		{Title: "NAME", Width: name},
		{Title: "STATE", Width: 12},
		{Title: "STATUS", Width: status},
		{Title: "IMAGE", Width: image},
		{Title: "PORTS", Width: ports},
		{Title: "CREATED", Width: 14},
	}
}

func (m Model) syncTable() Model {
	rows := lo.Map(m.list.Visible(), func(c docker.ContainerSummary, _ int) table.Row {
		ports := strings.Join(lo.Map(c.Ports, func(p docker.PortMapping, _ int) string {
			return p.String()
		}), ", ")
		return table.Row{c.Name, string(c.State), c.Status, c.Image, ports, humanize.Time(c.Created)}
	})
	m.table.SetRows(rows)
	if m.list.Index() >= 0 {
		m.table.SetCursor(m.list.Index())
	}
	return m
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

	case messages.ContainersRefreshedMsg:
		m.list.ApplyRefresh(msg.Containers)
		m.loading = false
		return m.syncTable(), nil

	case messages.ContainerChangedMsg:
		if msg.Container == nil {
			m.list.Remove(msg.ID)
		} else {
			m.list.Update(msg.ID, *msg.Container)
		}
		return m.syncTable(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.LineUp):
			m.list.Move(-1)
			return m.syncTable(), nil

		case key.Matches(msg, m.keys.LineDown):
			m.list.Move(1)
			return m.syncTable(), nil

		case key.Matches(msg, m.keys.Detail):
			if selected, ok := m.list.Selected(); ok {
				return m, func() tea.Msg { return messages.ShowDetailMsg{Container: selected} }
			}
			return m, nil

		case key.Matches(msg, m.keys.Logs):
			if selected, ok := m.list.Selected(); ok {
				return m, func() tea.Msg { return messages.ShowLogsMsg{Container: selected} }
			}
			return m, nil

		case key.Matches(msg, m.keys.ShowAll):
			m.showAll = !m.showAll
			if m.showAll {
				m.list.SetFilter(nil)
			} else {
				m.list.SetFilter(func(c docker.ContainerSummary) bool {
					return c.State == docker.StateRunning
				})
			}
			return m.syncTable(), nil

		case key.Matches(msg, m.keys.Open):
			if selected, ok := m.list.Selected(); ok {
				if port := selected.PublicPort(); port > 0 {
					browser.OpenURL(fmt.Sprintf("http://localhost:%d", port))
				}
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
