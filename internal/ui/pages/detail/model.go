// Package detail renders the drill-down views for a single container or
// network.
package detail

import (
	"dcv/internal/docker"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Logs   key.Binding
	Toggle key.Binding
	Kill   key.Binding
	Remove key.Binding
	Open   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Logs, k.Toggle, k.Kill, k.Remove, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var containerKeys = keyMap{
	Logs:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
	Toggle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
	Kill:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "kill")),
	Remove: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove")),
	Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open port")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

var networkKeys = keyMap{
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// Model shows either a container or a network; exactly one is set.
type Model struct {
	container *docker.ContainerSummary
	network   *docker.NetworkSummary
	help      help.Model
	keys      keyMap
	width     int
	height    int
}

func NewContainer(c docker.ContainerSummary, width, height int) Model {
	return Model{
		container: &c,
		help:      help.New(),
		keys:      containerKeys,
		width:     width,
		height:    height,
	}
}

func NewNetwork(n docker.NetworkSummary, width, height int) Model {
	return Model{
		network: &n,
		help:    help.New(),
		keys:    networkKeys,
		width:   width,
		height:  height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Container returns the shown container, if this is a container detail.
func (m Model) Container() (docker.ContainerSummary, bool) {
	if m.container == nil {
		return docker.ContainerSummary{}, false
	}
	return *m.container, true
}
