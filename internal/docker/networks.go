package docker

import (
	"context"
	"sort"

	"github.com/docker/docker/api/types/network"
)

// ListNetworks returns all networks sorted by name. Attached containers are
// not resolved here; use InspectNetwork for the drill-down.
func (d *Client) ListNetworks(ctx context.Context) ([]NetworkSummary, error) {
	list, err := d.api.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, err
	}

	summaries := make([]NetworkSummary, 0, len(list))
	for _, n := range list {
		summaries = append(summaries, newNetworkSummary(n))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name+summaries[i].ID < summaries[j].Name+summaries[j].ID
	})
	return summaries, nil
}

// InspectNetwork fetches a single network with its attached containers.
func (d *Client) InspectNetwork(ctx context.Context, id string) (NetworkSummary, error) {
	inspected, err := d.api.NetworkInspect(ctx, id, network.InspectOptions{})
	if err != nil {
		return NetworkSummary{}, err
	}
	summary := newNetworkSummary(inspected)
	sort.Strings(summary.Containers)
	return summary, nil
}
