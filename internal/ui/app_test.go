package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"dcv/config"
	"dcv/internal/docker"
	"dcv/internal/ui/actions"
	"dcv/internal/ui/messages"
	"dcv/internal/ui/navstack"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	containers []docker.ContainerSummary
	networks   []docker.NetworkSummary
	listErr    error

	startCalls  []string
	stopCalls   []string
	killCalls   []string
	removeCalls []string

	logEntries chan docker.LogEntry
	streamCtx  context.Context
}

func (f *fakeRuntime) ListContainers(ctx context.Context) ([]docker.ContainerSummary, error) {
	return f.containers, f.listErr
}

func (f *fakeRuntime) RefreshContainer(ctx context.Context, id string) (*docker.ContainerSummary, error) {
	for _, c := range f.containers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRuntime) ListNetworks(ctx context.Context) ([]docker.NetworkSummary, error) {
	return f.networks, f.listErr
}

func (f *fakeRuntime) InspectNetwork(ctx context.Context, id string) (docker.NetworkSummary, error) {
	for _, n := range f.networks {
		if n.ID == id {
			return n, nil
		}
	}
	return docker.NetworkSummary{}, errors.New("no such network")
}

func (f *fakeRuntime) StreamLogs(ctx context.Context, id string, tail int) (<-chan docker.LogEntry, error) {
	f.streamCtx = ctx
	if f.logEntries == nil {
		f.logEntries = make(chan docker.LogEntry)
	}
	return f.logEntries, nil
}

func (f *fakeRuntime) StartContainer(ctx context.Context, id string) error {
	f.startCalls = append(f.startCalls, id)
	return nil
}

func (f *fakeRuntime) StopContainer(ctx context.Context, id string) error {
	f.stopCalls = append(f.stopCalls, id)
	return nil
}

func (f *fakeRuntime) KillContainer(ctx context.Context, id string) error {
	f.killCalls = append(f.killCalls, id)
	return nil
}

func (f *fakeRuntime) RemoveContainer(ctx context.Context, id string) error {
	f.removeCalls = append(f.removeCalls, id)
	return nil
}

func testConfig() config.CliConfig {
	return config.CliConfig{
		Host:          "local",
		Interval:      2 * time.Second,
		Tail:          200,
		LogCapacity:   100,
		ActionTimeout: time.Second,
	}
}

func newTestApp(t *testing.T, fake *fakeRuntime) App {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a := NewApp(ctx, cancel, fake, testConfig())
	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	return a
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	model, _ := a.Update(msg)
	return model.(App)
}

// updateCmd applies msg and returns the resulting command as well.
func updateCmd(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	return model.(App), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func twoContainers() []docker.ContainerSummary {
	return []docker.ContainerSummary{
		{ID: "aaa111222333", Name: "api", State: docker.StateRunning, Status: "Up 3 minutes"},
		{ID: "bbb444555666", Name: "worker", State: docker.StateExited, Status: "Exited (0) 2 hours ago"},
	}
}

func TestToggleStartsExitedContainer(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	// select worker (exited) and toggle
	a = update(t, a, keyMsg("j"))
	a, cmd := updateCmd(t, a, keyMsg("s"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, []string{"bbb444555666"}, fake.startCalls)
	assert.Empty(t, fake.stopCalls)
	assert.True(t, a.actions.IsPending("bbb444555666"))

	completed, ok := msg.(messages.ActionCompletedMsg)
	require.True(t, ok)
	assert.Equal(t, actions.Start, completed.Kind)
	assert.NoError(t, completed.Err)

	// completion marks the request terminal; the targeted refresh folds the
	// new state into the list and retires it
	a = update(t, a, completed)
	assert.False(t, a.actions.IsPending("bbb444555666"))

	running := fake.containers[1]
	running.State = docker.StateRunning
	a = update(t, a, messages.ContainerChangedMsg{ID: running.ID, Container: &running})

	selected, ok := a.containers.Selected()
	require.True(t, ok)
	assert.Equal(t, docker.StateRunning, selected.State)
	_, tracked := a.actions.Get(running.ID)
	assert.False(t, tracked)
}

func TestToggleStopsRunningContainer(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	_, cmd := updateCmd(t, a, keyMsg("s"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"aaa111222333"}, fake.stopCalls)
	assert.Empty(t, fake.startCalls)
}

func TestSecondDispatchRejectedWhilePending(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	a, cmd := updateCmd(t, a, keyMsg("s"))
	require.NotNil(t, cmd)
	cmd()
	require.True(t, a.actions.IsPending("aaa111222333"))

	// a second command for the same container is rejected without a call
	a, _ = updateCmd(t, a, keyMsg("x"))
	assert.Empty(t, fake.killCalls)
	assert.NotEmpty(t, a.statusText)
	assert.True(t, a.statusErr)
}

func TestKillAndRemove(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	_, cmd := updateCmd(t, a, keyMsg("x"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"aaa111222333"}, fake.killCalls)

	a = update(t, a, messages.ActionCompletedMsg{ID: "aaa111222333", Kind: actions.Kill})
	a = update(t, a, messages.ContainerChangedMsg{ID: "aaa111222333", Container: &fake.containers[0]})

	_, cmd = updateCmd(t, a, keyMsg("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"aaa111222333"}, fake.removeCalls)
}

func TestRemovedContainerLeavesList(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	a = update(t, a, messages.ContainerChangedMsg{ID: "aaa111222333", Container: nil})

	selected, ok := a.containers.Selected()
	require.True(t, ok)
	assert.Equal(t, "worker", selected.Name)
}

func TestTabTogglesListsAndEscAtRootIsNoOp(t *testing.T) {
	fake := &fakeRuntime{}
	a := newTestApp(t, fake)

	assert.Equal(t, navstack.Containers, a.stack.Current())

	a = update(t, a, keyMsg("tab"))
	assert.Equal(t, navstack.Networks, a.stack.Current())

	a = update(t, a, keyMsg("esc"))
	assert.Equal(t, navstack.Networks, a.stack.Current())

	a = update(t, a, keyMsg("tab"))
	assert.Equal(t, navstack.Containers, a.stack.Current())
}

func TestDetailAndLogsNavigation(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	// enter pushes detail for the selection
	a, cmd := updateCmd(t, a, keyMsg("enter"))
	require.NotNil(t, cmd)
	a = update(t, a, cmd())
	assert.Equal(t, navstack.ContainerDetail, a.stack.Current())

	// l from detail pushes the log view and opens the stream
	a, cmd = updateCmd(t, a, keyMsg("l"))
	require.NotNil(t, cmd)
	a, cmd = updateCmd(t, a, cmd())
	assert.Equal(t, navstack.Logs, a.stack.Current())
	require.NotNil(t, cmd)
	a = update(t, a, cmd()) // streamOpened
	require.NotNil(t, fake.streamCtx)
	assert.NoError(t, fake.streamCtx.Err())

	// esc cancels the stream and returns to detail
	a = update(t, a, keyMsg("esc"))
	assert.Equal(t, navstack.ContainerDetail, a.stack.Current())
	assert.ErrorIs(t, fake.streamCtx.Err(), context.Canceled)

	a = update(t, a, keyMsg("esc"))
	assert.Equal(t, navstack.Containers, a.stack.Current())
}

func TestNetworkInspectPushesDetail(t *testing.T) {
	fake := &fakeRuntime{networks: []docker.NetworkSummary{
		{ID: "net111", Name: "bridge", Driver: "bridge", Containers: []string{"api"}},
	}}
	a := newTestApp(t, fake)
	a = update(t, a, keyMsg("tab"))
	a = update(t, a, messages.NetworksRefreshedMsg{Networks: fake.networks})

	a, cmd := updateCmd(t, a, keyMsg("enter"))
	require.NotNil(t, cmd)
	a = update(t, a, cmd())
	assert.Equal(t, navstack.NetworkDetail, a.stack.Current())

	a = update(t, a, keyMsg("esc"))
	assert.Equal(t, navstack.Networks, a.stack.Current())
}

func TestPollFailureKeepsStaleList(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})

	a = update(t, a, messages.PollFailedMsg{Kind: "containers", Err: errors.New("daemon went away")})

	// stale-but-available: the rows survive, the failure shows in the status
	_, ok := a.containers.Selected()
	assert.True(t, ok)
	assert.Contains(t, a.statusText, "daemon went away")
	assert.True(t, a.statusErr)
}

func TestStatusExpiry(t *testing.T) {
	fake := &fakeRuntime{}
	a := newTestApp(t, fake)

	a = update(t, a, messages.PollFailedMsg{Kind: "containers", Err: errors.New("boom")})
	seq := a.statusSeq

	// a stale expiry for an older message is ignored
	a = update(t, a, messages.StatusExpiredMsg{Seq: seq - 1})
	assert.NotEmpty(t, a.statusText)

	a = update(t, a, messages.StatusExpiredMsg{Seq: seq})
	assert.Empty(t, a.statusText)
}

func TestPollSuppression(t *testing.T) {
	fake := &fakeRuntime{containers: twoContainers()}
	a := newTestApp(t, fake)
	a = update(t, a, messages.ContainersRefreshedMsg{Containers: fake.containers})
	assert.True(t, a.shouldPoll())

	// pending action suppresses the poll
	a, cmd := updateCmd(t, a, keyMsg("s"))
	require.NotNil(t, cmd)
	assert.False(t, a.shouldPoll())
	a = update(t, a, cmd().(messages.ActionCompletedMsg))
	a = update(t, a, messages.ContainerChangedMsg{ID: "aaa111222333", Container: &fake.containers[0]})
	assert.True(t, a.shouldPoll())

	// the log view suppresses the poll
	a.stack.Push(navstack.Logs)
	assert.False(t, a.shouldPoll())
}

func TestForceQuitCancelsBackgroundTasks(t *testing.T) {
	fake := &fakeRuntime{}
	ctx, cancel := context.WithCancel(context.Background())
	a := NewApp(ctx, cancel, fake, testConfig())

	model, cmd := a.Update(keyMsg("ctrl+c"))
	a = model.(App)
	require.NotNil(t, cmd)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
