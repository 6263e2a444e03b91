package detail

import (
	"fmt"
	"sort"
	"strings"

	"dcv/internal/docker"
	"dcv/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

func (m Model) View() string {
	var title, body string
	switch {
	case m.container != nil:
		title = fmt.Sprintf(" Container: %s ", m.container.Name)
		body = containerBody(*m.container)
	case m.network != nil:
		title = fmt.Sprintf(" Network: %s ", m.network.Name)
		body = networkBody(*m.network)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render(title),
		"",
		body,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Height(m.height-1).Render(content),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render(m.help.View(m.keys))),
	)
}

func containerBody(c docker.ContainerSummary) string {
	ports := strings.Join(lo.Map(c.Ports, func(p docker.PortMapping, _ int) string {
		return p.String()
	}), ", ")
	if ports == "" {
		ports = "(none)"
	}

	labels := "(none)"
	if len(c.Labels) > 0 {
		keys := lo.Keys(c.Labels)
		sort.Strings(keys)
		labels = strings.Join(lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("  %s=%s", k, c.Labels[k])
		}), "\n")
	}

	return strings.Join([]string{
		row("ID", c.ID),
		row("Image", c.Image),
		row("State", styles.ForState(c.State).Render(string(c.State))),
		row("Status", c.Status),
		row("Ports", ports),
		row("Created", fmt.Sprintf("%s (%s)", c.Created.Format("2006-01-02 15:04:05"), humanize.Time(c.Created))),
		"",
		styles.LabelStyle.Render("Labels:"),
		labels,
	}, "\n")
}

func networkBody(n docker.NetworkSummary) string {
	attached := "  (none)"
	if len(n.Containers) > 0 {
		attached = strings.Join(lo.Map(n.Containers, func(name string, _ int) string {
			return "  " + name
		}), "\n")
	}

	return strings.Join([]string{
		row("ID", n.ID),
		row("Driver", n.Driver),
		row("Scope", n.Scope),
		row("Created", fmt.Sprintf("%s (%s)", n.Created.Format("2006-01-02 15:04:05"), humanize.Time(n.Created))),
		"",
		styles.LabelStyle.Render("Attached containers:"),
		attached,
	}, "\n")
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", styles.LabelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
}
