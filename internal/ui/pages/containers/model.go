package containers

import (
	"dcv/internal/docker"
	"dcv/internal/ui/listmodel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	LineUp   key.Binding
	LineDown key.Binding
	Detail   key.Binding
	Logs     key.Binding
	Toggle   key.Binding
	Kill     key.Binding
	Remove   key.Binding
	Open     key.Binding
	ShowAll  key.Binding
	Switch   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown, k.Detail, k.Logs, k.Toggle, k.Kill, k.Remove, k.ShowAll, k.Switch, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	LineUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	LineDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Logs:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
	Toggle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
	Kill:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "kill")),
	Remove:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open port")),
	ShowAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/running")),
	Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "networks")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type Model struct {
	list    listmodel.Model[docker.ContainerSummary]
	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	loading bool
	showAll bool
	width   int
	height  int
}

func NewModel() Model {
	tbl := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	tbl.SetStyles(table.DefaultStyles())

	return Model{
		list:    listmodel.New(func(c docker.ContainerSummary) string { return c.ID }),
		table:   tbl,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    defaultKeyMap,
		loading: true,
		showAll: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Selected returns the container under the cursor.
func (m Model) Selected() (docker.ContainerSummary, bool) {
	return m.list.Selected()
}

// Loading reports whether the first poll result is still outstanding.
func (m Model) Loading() bool {
	return m.loading
}
