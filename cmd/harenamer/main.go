// harenamer bulk-renames Home Assistant entity IDs.
//
// It lists entities over the hub's REST API, previews a regex-based
// rename plan, and applies confirmed renames through the hub's
// WebSocket API. See internal/cli for the command surface.
package main

import (
	"fmt"
	"os"

	"github.com/nerrad567/ha-entity-renamer/internal/cli"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
