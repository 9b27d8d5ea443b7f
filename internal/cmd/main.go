package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/axis-sh/axis-go/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name: args[0],
	})

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	return run(args, log, ui, os.Stderr)
}

// run dispatches args[1:] to a subcommand. A bare invocation prints the
// command list to helpOut.
func run(args []string, log hclog.Logger, ui cli.Ui, helpOut io.Writer) int {
	name := args[0]
	sub := args[1:]

	switch {
	case len(sub) == 0:
		sub = []string{"-help"}
	case len(sub) == 1 && (sub[0] == "-version" || sub[0] == "-v"):
		sub = []string{"version"}
	}

	initCommands(log, ui)

	c := &cli.CLI{
		Name:       name,
		Args:       sub,
		Version:    version.Version,
		Commands:   Commands,
		HelpWriter: helpOut,
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Error("error running command", "error", err)
		return 1
	}

	return exitCode
}
