package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dupsweep/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
