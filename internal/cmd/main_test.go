package cmd

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/axis-sh/axis-go/internal/version"
)

func TestRun_Version(t *testing.T) {
	for _, args := range [][]string{
		{"axis", "version"},
		{"axis", "-v"},
		{"axis", "-version"},
	} {
		ui := cli.NewMockUi()
		var help bytes.Buffer

		code := run(args, hclog.NewNullLogger(), ui, &help)

		assert.Equal(t, 0, code, args)
		assert.Contains(t, ui.OutputWriter.String(), version.Version, args)
	}
}

func TestRun_NoSubcommandPrintsHelp(t *testing.T) {
	ui := cli.NewMockUi()
	var help bytes.Buffer

	code := run([]string{"axis"}, hclog.NewNullLogger(), ui, &help)

	assert.Equal(t, 0, code)
	out := help.String()
	assert.Contains(t, out, "Usage: axis")
	assert.Contains(t, out, "mirror")
	assert.Contains(t, out, "sync")
	assert.Contains(t, out, "version")
}

func TestRun_UnknownSubcommand(t *testing.T) {
	var help bytes.Buffer

	code := run([]string{"axis", "nope"}, hclog.NewNullLogger(), cli.NewMockUi(), &help)

	assert.Equal(t, 127, code)
	assert.Contains(t, help.String(), "Usage: axis")
}

func TestMain_Version(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"axis", "version"}))
}

func TestRun_RegistersCommands(t *testing.T) {
	run([]string{"axis", "version"}, hclog.NewNullLogger(), cli.NewMockUi(), &bytes.Buffer{})

	for _, name := range []string{"mirror", "sync", "version"} {
		factory, ok := Commands[name]
		if assert.True(t, ok, name) {
			c, err := factory()
			assert.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.NotEmpty(t, c.Help())
		}
	}
}
