package ui

import (
	"context"
	"fmt"
	"time"

	"dcv/config"
	"dcv/internal/docker"
	"dcv/internal/ui/actions"
	"dcv/internal/ui/messages"
	"dcv/internal/ui/navstack"
	"dcv/internal/ui/pages/containers"
	"dcv/internal/ui/pages/detail"
	logspage "dcv/internal/ui/pages/logs"
	"dcv/internal/ui/pages/networks"
	"dcv/internal/ui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusDuration is how long a status message stays on screen.
const statusDuration = 4 * time.Second

type appKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Switch    key.Binding
	Toggle    key.Binding
	Kill      key.Binding
	Remove    key.Binding
}

var defaultAppKeys = appKeyMap{
	Quit:      key.NewBinding(key.WithKeys("q")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	Back:      key.NewBinding(key.WithKeys("esc")),
	Switch:    key.NewBinding(key.WithKeys("tab")),
	Toggle:    key.NewBinding(key.WithKeys("s")),
	Kill:      key.NewBinding(key.WithKeys("x")),
	Remove:    key.NewBinding(key.WithKeys("r")),
}

// App is the root model. It owns the navigation stack, the page models, the
// in-flight action set and the status line; nothing else mutates them.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	runtime docker.Runtime
	cfg     config.CliConfig

	stack      navstack.Stack
	containers containers.Model
	networks   networks.Model
	detail     detail.Model
	logs       logspage.Model

	actions    *actions.Set
	keys       appKeyMap
	statusText string
	statusErr  bool
	statusSeq  uint64
	width      int
	height     int
}

func NewApp(ctx context.Context, cancel context.CancelFunc, runtime docker.Runtime, cfg config.CliConfig) App {
	return App{
		ctx:        ctx,
		cancel:     cancel,
		runtime:    runtime,
		cfg:        cfg,
		stack:      navstack.New(navstack.Containers),
		containers: containers.NewModel(),
		networks:   networks.NewModel(ctx, runtime),
		actions:    actions.NewSet(),
		keys:       defaultAppKeys,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.containers.Init(),
		a.networks.Init(),
		a.pollContainers(),
		a.pollNetworks(),
		a.tick(),
	)
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.cfg.Interval, func(t time.Time) tea.Msg {
		return messages.TickMsg(t)
	})
}

func (a App) pollContainers() tea.Cmd {
	return func() tea.Msg {
		list, err := a.runtime.ListContainers(a.ctx)
		if err != nil {
			return messages.PollFailedMsg{Kind: "containers", Err: err}
		}
		return messages.ContainersRefreshedMsg{Containers: list}
	}
}

func (a App) pollNetworks() tea.Cmd {
	return func() tea.Msg {
		list, err := a.runtime.ListNetworks(a.ctx)
		if err != nil {
			return messages.PollFailedMsg{Kind: "networks", Err: err}
		}
		return messages.NetworksRefreshedMsg{Networks: list}
	}
}

// refreshContainer converges a single row right after an action instead of
// waiting for the next full poll.
func (a App) refreshContainer(id string) tea.Cmd {
	return func() tea.Msg {
		summary, err := a.runtime.RefreshContainer(a.ctx, id)
		if err != nil {
			return messages.PollFailedMsg{Kind: "containers", Err: err}
		}
		return messages.ContainerChangedMsg{ID: id, Container: summary}
	}
}

func (a App) runAction(id string, kind actions.Kind) tea.Cmd {
	runtime, timeout, parent := a.runtime, a.cfg.ActionTimeout, a.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		var err error
		switch kind {
		case actions.Start:
			err = runtime.StartContainer(ctx, id)
		case actions.Stop:
			err = runtime.StopContainer(ctx, id)
		case actions.Kill:
			err = runtime.KillContainer(ctx, id)
		case actions.Remove:
			err = runtime.RemoveContainer(ctx, id)
		}
		return messages.ActionCompletedMsg{ID: id, Kind: kind, Err: err}
	}
}

// shouldPoll suppresses the periodic poll while the log view is streaming
// or an action is still in flight.
func (a App) shouldPoll() bool {
	return a.stack.Current() != navstack.Logs && !a.actions.AnyPending()
}

func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.statusSeq++
	a.statusText = text
	a.statusErr = isErr
	seq := a.statusSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return messages.StatusExpiredMsg{Seq: seq}
	})
}

// selectedContainer resolves the container the action keys refer to in the
// current view.
func (a App) selectedContainer() (docker.ContainerSummary, bool) {
	switch a.stack.Current() {
	case navstack.Containers:
		return a.containers.Selected()
	case navstack.ContainerDetail:
		return a.detail.Container()
	}
	return docker.ContainerSummary{}, false
}

func (a App) dispatch(c docker.ContainerSummary, kind actions.Kind) (App, tea.Cmd) {
	if !a.actions.Dispatch(c.ID, kind) {
		pending, _ := a.actions.Get(c.ID)
		cmd := a.setStatus(fmt.Sprintf("%s %s: %s still pending", kind, c.ID, pending.Kind), true)
		return a, cmd
	}
	return a, a.runAction(c.ID, kind)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// one line is reserved for the status bar
		pageSize := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 1}
		a.containers, _ = a.containers.Update(pageSize)
		a.networks, _ = a.networks.Update(pageSize)
		a.detail, _ = a.detail.Update(pageSize)
		a.logs, _ = a.logs.Update(pageSize)
		return a, nil

	case messages.TickMsg:
		cmds := []tea.Cmd{a.tick()}
		if a.shouldPoll() {
			cmds = append(cmds, a.pollContainers(), a.pollNetworks())
		}
		return a, tea.Batch(cmds...)

	case messages.ContainersRefreshedMsg:
		var cmd tea.Cmd
		a.containers, cmd = a.containers.Update(msg)
		return a, cmd

	case messages.NetworksRefreshedMsg:
		var cmd tea.Cmd
		a.networks, cmd = a.networks.Update(msg)
		return a, cmd

	case messages.PollFailedMsg:
		cmd := a.setStatus(fmt.Sprintf("%s poll failed: %v", msg.Kind, msg.Err), true)
		return a, cmd

	case messages.ContainerChangedMsg:
		a.containers, _ = a.containers.Update(msg)
		a.detail, _ = a.detail.Update(msg)
		a.actions.Retire(msg.ID)
		return a, nil

	case messages.ActionCompletedMsg:
		a.actions.Complete(msg.ID, msg.Err)
		var cmd tea.Cmd
		if msg.Err != nil {
			cmd = a.setStatus(fmt.Sprintf("%s %s failed: %v", msg.Kind, msg.ID, msg.Err), true)
		} else {
			cmd = a.setStatus(fmt.Sprintf("%s %s: ok", msg.Kind, msg.ID), false)
		}
		return a, tea.Batch(cmd, a.refreshContainer(msg.ID))

	case messages.StatusExpiredMsg:
		if msg.Seq == a.statusSeq {
			a.statusText = ""
			a.statusErr = false
		}
		return a, nil

	case messages.ShowDetailMsg:
		a.stack.Push(navstack.ContainerDetail)
		a.detail = detail.NewContainer(msg.Container, a.width, a.height-1)
		return a, nil

	case messages.ShowNetworkMsg:
		a.stack.Push(navstack.NetworkDetail)
		a.detail = detail.NewNetwork(msg.Network, a.width, a.height-1)
		return a, nil

	case messages.ShowLogsMsg:
		a.stack.Push(navstack.Logs)
		a.logs = logspage.NewModel(a.ctx, a.runtime, msg.Container, a.cfg.Tail, a.cfg.LogCapacity, a.width, a.height-1)
		return a, a.logs.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			a.cancel()
			return a, tea.Quit

		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Back):
			if a.stack.Current() == navstack.Logs {
				a.logs.Destroy()
			}
			a.stack.Pop()
			return a, nil

		case key.Matches(msg, a.keys.Switch):
			switch a.stack.Current() {
			case navstack.Containers:
				a.stack.Replace(navstack.Networks)
			case navstack.Networks:
				a.stack.Replace(navstack.Containers)
			}
			return a, nil

		case key.Matches(msg, a.keys.Toggle):
			if c, ok := a.selectedContainer(); ok {
				kind := actions.Start
				if c.State.Stoppable() {
					kind = actions.Stop
				}
				return a.dispatch(c, kind)
			}

		case key.Matches(msg, a.keys.Kill):
			if c, ok := a.selectedContainer(); ok {
				return a.dispatch(c, actions.Kill)
			}

		case key.Matches(msg, a.keys.Remove):
			if c, ok := a.selectedContainer(); ok {
				return a.dispatch(c, actions.Remove)
			}
		}
	}

	// Everything else belongs to the active view.
	var cmd tea.Cmd
	switch a.stack.Current() {
	case navstack.Containers:
		a.containers, cmd = a.containers.Update(msg)
	case navstack.Networks:
		a.networks, cmd = a.networks.Update(msg)
	case navstack.ContainerDetail, navstack.NetworkDetail:
		a.detail, cmd = a.detail.Update(msg)
	case navstack.Logs:
		a.logs, cmd = a.logs.Update(msg)
	}
	return a, cmd
}

func (a App) statusBar() string {
	style := styles.StatusBarStyle
	if a.statusErr {
		style = styles.StatusErrorStyle
	}
	text := a.statusText
	if text == "" {
		text = a.stack.Current().String()
		style = styles.StatusBarStyle.Foreground(lipgloss.Color("8"))
	}
	return style.Width(a.width).Render(text)
}

func (a App) View() string {
	var content string
	switch a.stack.Current() {
	case navstack.Containers:
		content = a.containers.View()
	case navstack.Networks:
		content = a.networks.View()
	case navstack.ContainerDetail, navstack.NetworkDetail:
		content = a.detail.View()
	case navstack.Logs:
		content = a.logs.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar())
}
