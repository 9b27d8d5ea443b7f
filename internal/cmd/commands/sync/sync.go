package sync

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/axis-sh/axis-go/internal/cmd/base"
	"github.com/axis-sh/axis-go/pkg/mirror"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagMapping string
	flagFormat  string
}

func (c *Command) Synopsis() string {
	return "Sync the local governance mapping"
}

func (c *Command) Help() string {
	return `Usage: axis sync [options]

  Syncs the local governance mapping with the remote rule set.

  Remote sync is not implemented yet: the mapping file is not read and the
  command always reports 12 rules applied.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("sync", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to an HCL config file",
	)
	f.StringVar(
		&c.flagMapping, "mapping", mirror.DefaultMappingFile,
		"Path to the governance mapping file",
	)
	f.StringVar(
		&c.flagFormat, "format", "text",
		"Output format (text, json, yaml)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	f := c.Flags()
	f.SetOutput(io.Discard)
	if err := f.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewMirrorClient(c.flagConfig, "")
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	result := client.SyncMapping(c.flagMapping)

	switch c.flagFormat {
	case "json":
		b, err := json.Marshal(result)
		if err != nil {
			ui.Error(fmt.Sprintf("error rendering result: %v", err))
			return 1
		}
		ui.Output(string(b))
	case "yaml":
		b, err := yaml.Marshal(result)
		if err != nil {
			ui.Error(fmt.Sprintf("error rendering result: %v", err))
			return 1
		}
		ui.Output(strings.TrimRight(string(b), "\n"))
	case "text":
		ui.Info(fmt.Sprintf("Mapping %s: %s (%d rules applied)",
			c.flagMapping, result.Status, result.RulesApplied))
	default:
		ui.Error(fmt.Sprintf("unsupported format %q", c.flagFormat))
		return 1
	}

	return 0
}
