// Command safecalc is a desk calculator for the terminal. Run it bare for
// the interactive shell, or use the eval subcommand for one-shot results.
package main

import (
	"fmt"
	"os"

	"safecalc/internal/cli"
)

// Set at build time with -ldflags "-X main.version=..." and friends.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "safecalc:", err)
		os.Exit(1)
	}
}
