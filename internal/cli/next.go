package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	preflyerrors "github.com/preflylabs/prefly/internal/errors"
	"github.com/preflylabs/prefly/internal/selector"
	"github.com/preflylabs/prefly/internal/tui"
)

// newNextCmd creates the next command.
func newNextCmd(flags *GlobalFlags) *cobra.Command {
	var (
		noInteractive bool
		yes           bool
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Select and analyze the next ready task",
		Long: `Select the best next-ready task from the sprint plan and analyze it.

Selection is phase-aware: work continues in the phase of the most recently
completed task. Detected gaps open the clarification wizard; the final
merged context is printed as JSON for the downstream prompt assembler.

Examples:
  prefly next                # select, confirm, analyze
  prefly next --yes          # skip the confirmation prompt
  prefly next --output json  # machine-readable, never interactive

Exit codes:
  0: Success (including "no ready tasks")
  1: Error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNext(cmd.Context(), os.Stdout, flags, noInteractive, yes)
		},
	}

	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "never open interactive UI")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

// runNext executes the next command.
func runNext(ctx context.Context, w io.Writer, flags *GlobalFlags, noInteractive, yes bool) error {
	out := tui.NewOutput(w, flags.Output)

	e, err := loadEngine(ctx)
	if err != nil {
		out.Error(err)
		return err
	}

	task := selector.SelectNext(e.sprint.Tasks)
	if task == nil {
		// A normal outcome, not a failure: nothing is ready yet.
		out.Warning("no ready tasks: every pending task is blocked on incomplete dependencies")
		if flags.Output == OutputJSON {
			return out.JSON(map[string]any{"task": nil})
		}
		return nil
	}

	logger := GetLogger()
	logger.Info().Str("task_id", task.ID).Str("phase", task.Phase).Msg("task selected")

	interactive := isInteractive(flags, noInteractive)
	if interactive && !yes {
		confirmed, confirmErr := tui.Confirm(fmt.Sprintf("Analyze task %s (%s)?", task.ID, task.Phase), true)
		if confirmErr != nil {
			if errors.Is(confirmErr, preflyerrors.ErrMenuCanceled) {
				out.Info("canceled")
				return nil
			}
			return confirmErr
		}
		if !confirmed {
			out.Info("canceled")
			return nil
		}
	}

	return runAnalysisFlow(ctx, w, flags, e, *task, interactive)
}
