package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/preflylabs/prefly/internal/tui"
)

// newTasksCmd creates the tasks command.
func newTasksCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List sprint tasks with status, phase, and agent",
		Long: `List every task in the sprint plan.

Examples:
  prefly tasks
  prefly tasks --output json

Exit codes:
  0: Success
  1: Error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasks(cmd.Context(), os.Stdout, flags)
		},
	}
}

// runTasks executes the tasks command.
func runTasks(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	out := tui.NewOutput(w, flags.Output)

	e, err := loadEngine(ctx)
	if err != nil {
		out.Error(err)
		return err
	}

	if flags.Output == OutputJSON {
		return out.JSON(e.sprint.Tasks)
	}

	tui.CheckNoColor()
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "ID", Width: 12},
		{Name: "STATUS", Width: 14},
		{Name: "PHASE", Width: 22},
		{Name: "AGENT", Width: 22},
		{Name: "ESTIMATE", Width: 10},
	})

	table.WriteHeader()
	for _, task := range e.sprint.Tasks {
		table.WriteTaskRow(task.Status,
			task.ID,
			task.Status.String(),
			task.Phase,
			task.Agent,
			task.EstimatedTime.String(),
		)
	}
	return nil
}
