package sync

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-sh/axis-go/internal/cmd/base"
)

func newCommand(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()
	t.Setenv("AXIS_API_KEY", "test-key")

	ui := cli.NewMockUi()
	return &Command{
		Command: &base.Command{
			Log: hclog.NewNullLogger(),
			UI:  ui,
			Fs:  afero.NewMemMapFs(),
		},
	}, ui
}

func TestSyncCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default text",
			args: nil,
			want: "Mapping .axis/mapping.json: synced (12 rules applied)",
		},
		{
			name: "missing mapping file",
			args: []string{"-mapping", "/no/such/mapping.json"},
			want: "Mapping /no/such/mapping.json: synced (12 rules applied)",
		},
		{
			name: "json",
			args: []string{"-format", "json"},
			want: `{"status":"synced","rules_applied":12}`,
		},
		{
			name: "yaml",
			args: []string{"-format", "yaml"},
			want: "status: synced\nrules_applied: 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand(t)

			code := c.Run(tt.args)

			require.Equal(t, 0, code, ui.ErrorWriter.String())
			assert.Contains(t, ui.OutputWriter.String(), tt.want)
		})
	}
}

func TestSyncCommand_UnknownFormat(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"-format", "xml"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), `unsupported format "xml"`)
}
