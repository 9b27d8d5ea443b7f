package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	var path string
	var verbose bool
	f.StringVar(&path, "path", ".", "Path to inspect")
	f.BoolVar(&verbose, "verbose", false, "Print more")

	help := f.Help()

	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-path=.")
	assert.Contains(t, help, "Path to inspect")
	assert.Contains(t, help, "-verbose\n")
	assert.NotContains(t, help, "-verbose=false")
}
