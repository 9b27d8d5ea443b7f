package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/axis-sh/axis-go/internal/cmd/base"
	"github.com/axis-sh/axis-go/internal/cmd/commands/mirror"
	"github.com/axis-sh/axis-go/internal/cmd/commands/sync"
	"github.com/axis-sh/axis-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"mirror": func() (cli.Command, error) {
			return &mirror.Command{Command: b}, nil
		},
		"sync": func() (cli.Command, error) {
			return &sync.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
