// Command tabgrouper syncs and reorders native browser tab groups.
package main

import "github.com/bnema/tabgrouper/internal/cli/cmd"

// Build-time variables (set via ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.SetVersion(version + " (" + commit + ")")
	cmd.Execute()
}
