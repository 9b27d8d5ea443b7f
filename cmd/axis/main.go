package main

import (
	"os"

	"github.com/axis-sh/axis-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
