package docker

import (
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/samber/lo"
)

// State is the daemon-reported container lifecycle state.
type State string

const (
	StateCreated    State = "created"
	StateRunning    State = "running"
	StatePaused     State = "paused"
	StateRestarting State = "restarting"
	StateExited     State = "exited"
	StateDead       State = "dead"
)

// Stoppable reports whether the sensible toggle action for this state is a
// stop rather than a start. Paused and restarting containers count as
// stoppable; if the daemon disagrees it rejects the call and the error is
// surfaced in the status line.
func (s State) Stoppable() bool {
	return s == StateRunning || s == StateRestarting || s == StatePaused
}

// PortMapping is a single published or exposed container port.
type PortMapping struct {
	IP      string
	Private uint16
	Public  uint16
	Proto   string
}

func (p PortMapping) String() string {
	if p.Public > 0 {
		return fmt.Sprintf("%d:%d/%s", p.Public, p.Private, p.Proto)
	}
	return fmt.Sprintf("%d/%s", p.Private, p.Proto)
}

type ContainerSummary struct {
	ID      string
	Name    string
	Image   string
	State   State
	Status  string
	Ports   []PortMapping
	Created time.Time
	Labels  map[string]string
}

// PublicPort returns the first published host port, or 0 when nothing is
// published.
func (c ContainerSummary) PublicPort() uint16 {
	for _, p := range c.Ports {
		if p.Public > 0 {
			return p.Public
		}
	}
	return 0
}

func newContainerSummary(c container.Summary) ContainerSummary {
	name := "no name"
	if len(c.Names) > 0 {
		name = strings.TrimPrefix(c.Names[0], "/")
	}

	return ContainerSummary{
		ID:      shortID(c.ID),
		Name:    name,
		Image:   c.Image,
		State:   State(c.State),
		Status:  c.Status,
		Ports: lo.Map(c.Ports, func(p container.Port, _ int) PortMapping {
			return PortMapping{IP: p.IP, Private: p.PrivatePort, Public: p.PublicPort, Proto: p.Type}
		}),
		Created: time.Unix(c.Created, 0).UTC(),
		Labels:  c.Labels,
	}
}

type NetworkSummary struct {
	ID      string
	Name    string
	Driver  string
	Scope   string
	Created time.Time

	// Containers holds the names of attached containers. Filled by
	// InspectNetwork only; the list endpoint leaves it empty.
	Containers []string
}

func newNetworkSummary(n network.Summary) NetworkSummary {
	summary := NetworkSummary{
		ID:      shortID(n.ID),
		Name:    n.Name,
		Driver:  n.Driver,
		Scope:   n.Scope,
		Created: n.Created.UTC(),
	}
	for _, endpoint := range n.Containers {
		summary.Containers = append(summary.Containers, endpoint.Name)
	}
	return summary
}

// LogEntry is one decoded log line. Seq is zero until the scrollback buffer
// assigns it on append.
type LogEntry struct {
	Seq    uint64
	Source string // "stdout" or "stderr"
	Time   time.Time
	Text   string
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
