package docker

import (
	"context"
	"sort"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// Runtime is the surface of the daemon the UI consumes. *Client implements
// it; tests substitute a fake.
type Runtime interface {
	ListContainers(ctx context.Context) ([]ContainerSummary, error)
	RefreshContainer(ctx context.Context, id string) (*ContainerSummary, error)
	ListNetworks(ctx context.Context) ([]NetworkSummary, error)
	InspectNetwork(ctx context.Context, id string) (NetworkSummary, error)
	StreamLogs(ctx context.Context, id string, tail int) (<-chan LogEntry, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	KillContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
}

// Client wraps a Docker API client with the calls this program needs.
type Client struct {
	api *client.Client
}

func NewClient(api *client.Client) *Client {
	return &Client{api: api}
}

// Ping verifies the daemon is reachable within the given deadline.
func (d *Client) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	_, err := d.api.Ping(ctx)
	return err
}

// ListContainers returns all containers, running or not, sorted by name.
func (d *Client) ListContainers(ctx context.Context) ([]ContainerSummary, error) {
	list, err := d.api.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	summaries := make([]ContainerSummary, 0, len(list))
	for _, c := range list {
		summaries = append(summaries, newContainerSummary(c))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name+summaries[i].ID < summaries[j].Name+summaries[j].ID
	})
	return summaries, nil
}

// RefreshContainer fetches the current summary of a single container. A nil
// summary with nil error means the container no longer exists.
func (d *Client) RefreshContainer(ctx context.Context, id string) (*ContainerSummary, error) {
	list, err := d.api.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("id", id)),
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	summary := newContainerSummary(list[0])
	return &summary, nil
}

func (d *Client) StartContainer(ctx context.Context, id string) error {
	return d.api.ContainerStart(ctx, id, container.StartOptions{})
}

func (d *Client) StopContainer(ctx context.Context, id string) error {
	return d.api.ContainerStop(ctx, id, container.StopOptions{})
}

func (d *Client) KillContainer(ctx context.Context, id string) error {
	return d.api.ContainerKill(ctx, id, "SIGKILL")
}

func (d *Client) RemoveContainer(ctx context.Context, id string) error {
	return d.api.ContainerRemove(ctx, id, container.RemoveOptions{Force: true})
}
