package logs

import (
	"dcv/internal/docker"
	"dcv/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxBatch bounds how many lines a single message may carry; anything
// beyond it is picked up by the next wait command.
const maxBatch = 256

type streamOpenedMsg struct {
	entries <-chan docker.LogEntry
}

type streamFailedMsg struct {
	err error
}

// open starts the follow request on a background task; only the resulting
// message touches the model.
func (m Model) open() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.runtime.StreamLogs(m.streamCtx, m.container.ID, m.tail)
		if err != nil {
			return streamFailedMsg{err: err}
		}
		return streamOpenedMsg{entries: entries}
	}
}

// waitForLogs blocks for the next line, then drains whatever else is
// already queued so a chatty container cannot outpace the update loop.
func waitForLogs(entries <-chan docker.LogEntry) tea.Cmd {
	return func() tea.Msg {
		first, ok := <-entries
		if !ok {
			return messages.StreamEndedMsg{}
		}
		batch := []docker.LogEntry{first}
		for len(batch) < maxBatch {
			select {
			case entry, ok := <-entries:
				if !ok {
					return messages.LogBatchMsg{Entries: batch}
				}
				batch = append(batch, entry)
			default:
				return messages.LogBatchMsg{Entries: batch}
			}
		}
		return messages.LogBatchMsg{Entries: batch}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// the zero value shows nothing; only a started stream has a buffer
		if m.buffer != nil {
			m.buffer.SetViewport(viewportHeight(msg.Height))
		}
		return m, nil

	case streamOpenedMsg:
		m.entries = msg.entries
		return m, waitForLogs(m.entries)

	case streamFailedMsg:
		m.ended = true
		m.openErr = msg.err
		return m, nil

	case messages.LogBatchMsg:
		for _, entry := range msg.Entries {
			m.buffer.Append(entry)
		}
		return m, waitForLogs(m.entries)

	case messages.StreamEndedMsg:
		m.ended = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PageUp):
			m.buffer.Scroll(-viewportHeight(m.height))
		case key.Matches(msg, m.keys.PageDown):
			m.buffer.Scroll(viewportHeight(m.height))
		case key.Matches(msg, m.keys.Top):
			m.buffer.JumpTop()
		case key.Matches(msg, m.keys.Bottom):
			m.buffer.JumpBottom()
		}
		return m, nil
	}

	return m, nil
}
