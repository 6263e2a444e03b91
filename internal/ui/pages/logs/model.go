package logs

import (
	"context"

	"dcv/internal/docker"
	"dcv/internal/ui/logbuffer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PageUp, k.PageDown, k.Top, k.Bottom, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// Model owns the log stream of one container: the cancelable read, the
// bounded scrollback and the scroll position. Leaving the view destroys all
// of it.
type Model struct {
	runtime   docker.Runtime
	container docker.ContainerSummary
	buffer    *logbuffer.Buffer
	entries   <-chan docker.LogEntry
	streamCtx context.Context
	cancel    context.CancelFunc
	tail      int
	keys      keyMap
	help      help.Model
	ended     bool
	openErr   error
	width     int
	height    int
}

func NewModel(ctx context.Context, runtime docker.Runtime, container docker.ContainerSummary, tail, capacity, width, height int) Model {
	streamCtx, cancel := context.WithCancel(ctx)
	buffer := logbuffer.New(capacity)
	buffer.SetViewport(viewportHeight(height))

	return Model{
		runtime:   runtime,
		container: container,
		buffer:    buffer,
		streamCtx: streamCtx,
		cancel:    cancel,
		tail:      tail,
		keys:      defaultKeyMap,
		help:      help.New(),
		width:     width,
		height:    height,
	}
}

// title + help line
func viewportHeight(height int) int {
	return height - 2
}

func (m Model) Init() tea.Cmd {
	return m.open()
}

// Destroy cancels the stream read and discards the scrollback.
func (m Model) Destroy() {
	m.cancel()
	m.buffer.Reset()
}
