package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/tui"
)

// versionInfo is the JSON shape of the version command output.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// newVersionCmd creates the version command.
func newVersionCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersion(os.Stdout, flags, info)
		},
	}
}

// runVersion executes the version command.
func runVersion(w io.Writer, flags *GlobalFlags, info BuildInfo) error {
	out := tui.NewOutput(w, flags.Output)

	// formatVersion fills in the defaults for unset build info fields.
	full := formatVersion(info)

	if flags.Output == OutputJSON {
		return out.JSON(versionInfo{
			Version: orUnset(info.Version, constants.Version),
			Commit:  orUnset(info.Commit, "none"),
			Date:    orUnset(info.Date, "unknown"),
		})
	}

	out.Info("prefly " + full)
	return nil
}

// orUnset returns the value, or the fallback when empty.
func orUnset(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
