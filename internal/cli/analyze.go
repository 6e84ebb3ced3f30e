package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/preflylabs/prefly/internal/tui"
)

// newAnalyzeCmd creates the analyze command.
func newAnalyzeCmd(flags *GlobalFlags) *cobra.Command {
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "analyze <task-id>",
		Short: "Analyze a specific task for readiness",
		Long: `Analyze one task: score its structural completeness and detect gaps
against the live project.

With gaps and a terminal, the clarification wizard collects answers and the
merged context is printed as JSON. Without a terminal (or with
--no-interactive or --output json) the question list is printed instead.

Examples:
  prefly analyze API-002
  prefly analyze API-002 --output json
  prefly analyze API-002 --no-interactive

Exit codes:
  0: Success
  1: Task not found or error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), os.Stdout, flags, args[0], noInteractive)
		},
	}

	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "print questions instead of launching the wizard")

	return cmd
}

// runAnalyze executes the analyze command.
func runAnalyze(ctx context.Context, w io.Writer, flags *GlobalFlags, taskID string, noInteractive bool) error {
	out := tui.NewOutput(w, flags.Output)

	e, err := loadEngine(ctx)
	if err != nil {
		out.Error(err)
		return err
	}

	task, ok := e.sprint.Get(taskID)
	if !ok {
		err := taskNotFound(taskID)
		out.Error(err)
		return err
	}

	return runAnalysisFlow(ctx, w, flags, e, task, isInteractive(flags, noInteractive))
}
