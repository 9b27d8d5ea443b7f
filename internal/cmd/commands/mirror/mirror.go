package mirror

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/axis-sh/axis-go/internal/cmd/base"
	"github.com/axis-sh/axis-go/pkg/mirror"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagBaseURL string
	flagPath    string
	flagFormat  string
}

func (c *Command) Synopsis() string {
	return "Fetch the context mirror for a path"
}

func (c *Command) Help() string {
	return `Usage: axis mirror [options]

  Fetches the context mirror for a path from the Axis API and prints its
  nodes and metadata. The API key is read from AXIS_API_KEY or the config
  file.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("mirror", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to an HCL config file",
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"[AXIS_BASE_URL] Axis API base URL",
	)
	f.StringVar(
		&c.flagPath, "path", mirror.DefaultMirrorPath,
		"Filesystem path to request the mirror for",
	)
	f.StringVar(
		&c.flagFormat, "format", "table",
		"Output format (table, json, yaml)",
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

	switch c.flagFormat {
	case "table", "json", "yaml":
	default:
		ui.Error(fmt.Sprintf("unsupported format %q", c.flagFormat))
		return 1
	}

	client, err := c.NewMirrorClient(c.flagConfig, c.flagBaseURL)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := client.GetMirror(ctx, c.flagPath)
	if !res.Ok() {
		ui.Error(fmt.Sprintf("error fetching mirror: %v", res.Err))
		return 1
	}

	out, err := render(res.Mirror, c.flagFormat)
	if err != nil {
		ui.Error(fmt.Sprintf("error rendering mirror: %v", err))
		return 1
	}
	ui.Output(out)

	return 0
}

func render(m *mirror.MirrorResponse, format string) (string, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "yaml":
		b, err := yaml.Marshal(m)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		return renderTable(m), nil
	}
}

func renderTable(m *mirror.MirrorResponse) string {
	var b strings.Builder

	if m.Root != nil {
		fmt.Fprintf(&b, "Root: %s\n", *m.Root)
	}
	if m.Timestamp != nil {
		fmt.Fprintf(&b, "Timestamp: %s (%s)\n",
			m.Timestamp.Format("2006-01-02 15:04:05 MST"), humanize.Time(*m.Timestamp))
	}

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tCHILDREN")
	for _, n := range m.Nodes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			optional(n.Name), optional(n.Type), size(n.Size), strings.Join(n.Children, ","))
	}
	tw.Flush()

	if len(m.Metadata) > 0 {
		b.WriteString("\nMetadata:\n")
		keys := make([]string, 0, len(m.Metadata))
		for k := range m.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", k, m.Metadata[k])
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func size(s *float64) string {
	if s == nil {
		return "-"
	}
	// Only whole byte counts that fit in a uint64 get byte units.
	if *s < 0 || *s != math.Trunc(*s) || *s >= math.MaxUint64 {
		return humanize.Ftoa(*s)
	}
	return humanize.Bytes(uint64(*s))
}
