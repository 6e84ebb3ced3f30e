// Package main provides the entry point for the prefly CLI.
package main

import (
	"context"
	"os"

	"github.com/preflylabs/prefly/internal/cli"
)

// Build information set via ldflags at release time.
var (
	version = "" //nolint:gochecknoglobals // Set by the linker
	commit  = "" //nolint:gochecknoglobals // Set by the linker
	date    = "" //nolint:gochecknoglobals // Set by the linker
)

func main() {
	ctx := context.Background()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
