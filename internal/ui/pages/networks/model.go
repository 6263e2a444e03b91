package networks

import (
	"context"

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
	Inspect  key.Binding
	Switch   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown, k.Inspect, k.Switch, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	LineUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	LineDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Inspect:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
	Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "containers")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type Model struct {
	ctx     context.Context
	runtime docker.Runtime
	list    listmodel.Model[docker.NetworkSummary]
	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	loading bool
	width   int
	height  int
}

func NewModel(ctx context.Context, runtime docker.Runtime) Model {
	tbl := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	tbl.SetStyles(table.DefaultStyles())

	return Model{
		ctx:     ctx,
		runtime: runtime,
		list:    listmodel.New(func(n docker.NetworkSummary) string { return n.ID }),
		table:   tbl,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    defaultKeyMap,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Selected() (docker.NetworkSummary, bool) {
	return m.list.Selected()
}
