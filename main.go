package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dcv/config"
	"dcv/internal/docker"
	"dcv/internal/ui"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/docker/client"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	var cfg config.CliConfig
	kong.Parse(&cfg, kong.Configuration(kongyaml.Loader, "./dcv.yaml", "~/.config/dcv/config.yaml", "~/.dcv.yaml"))

	if cfg.Version {
		fmt.Printf("dcv version: %s\nCommit: %s\nBuilt on: %s\n", version, commit, date)
		os.Exit(0)
	}

	api, err := newAPIClient(cfg.Host)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	runtime := docker.NewClient(api)

	// An unreachable daemon is fatal before the UI takes the screen.
	if err := runtime.Ping(context.Background(), 10*time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach the Docker daemon at %s: %v\n", cfg.Host, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(ui.NewApp(ctx, cancel, runtime, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newAPIClient(host string) (*client.Client, error) {
	switch {
	case host == "local":
		return config.NewLocalClient()
	case strings.HasPrefix(host, "ssh://"):
		return config.NewSSHClient(host)
	case strings.HasPrefix(host, "tcp://"):
		return config.NewRemoteClient(host)
	default:
		return nil, fmt.Errorf("unsupported host type: %s", host)
	}
}
