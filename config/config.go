package config

import (
	"time"
)

type CliConfig struct {
	Host          string        `help:"Daemon to connect to: local, tcp://host:port or ssh://user@host." default:"local" name:"host"`
	Interval      time.Duration `help:"Container and network poll interval." default:"2s" name:"interval"`
	Tail          int           `help:"Log lines to backfill when opening a log view." default:"200" name:"tail"`
	LogCapacity   int           `help:"Maximum log lines kept in scrollback." default:"2000" name:"log-capacity"`
	ActionTimeout time.Duration `help:"Deadline for start/stop/kill/remove calls." default:"10s" name:"action-timeout"`
	Version       bool          `help:"Show version information." default:"false" name:"version" short:"v"`
}
