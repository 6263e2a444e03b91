// Package messages defines the typed events background tasks deliver to the
// update loop. All daemon errors cross this boundary as message fields,
// never as uncaught failures.
package messages

import (
	"time"

	"dcv/internal/docker"
	"dcv/internal/ui/actions"
)

// ContainersRefreshedMsg carries a full container poll result.
type ContainersRefreshedMsg struct {
	Containers []docker.ContainerSummary
}

// NetworksRefreshedMsg carries a full network poll result.
type NetworksRefreshedMsg struct {
	Networks []docker.NetworkSummary
}

// PollFailedMsg reports a failed poll; previous list contents stay on screen.
type PollFailedMsg struct {
	Kind string // "containers" or "networks"
	Err  error
}

// ContainerChangedMsg is the result of a targeted single-container refresh.
// A nil summary means the container is gone.
type ContainerChangedMsg struct {
	ID        string
	Container *docker.ContainerSummary
}

// ActionCompletedMsg reports the terminal outcome of a lifecycle request.
type ActionCompletedMsg struct {
	ID   string
	Kind actions.Kind
	Err  error
}

// LogBatchMsg delivers one or more decoded log lines from the active stream.
type LogBatchMsg struct {
	Entries []docker.LogEntry
}

// StreamEndedMsg signals that the log stream closed. No reconnect is
// attempted; the user re-enters the log view to retry.
type StreamEndedMsg struct{}

// ShowDetailMsg asks the root model to push the detail view for a container.
type ShowDetailMsg struct {
	Container docker.ContainerSummary
}

// ShowLogsMsg asks the root model to push the log view for a container.
type ShowLogsMsg struct {
	Container docker.ContainerSummary
}

// ShowNetworkMsg asks the root model to push the network detail view.
type ShowNetworkMsg struct {
	Network docker.NetworkSummary
}

// StatusExpiredMsg clears the status line if Seq still matches the message
// being displayed.
type StatusExpiredMsg struct {
	Seq uint64
}

// TickMsg drives the poll schedule.
type TickMsg time.Time
