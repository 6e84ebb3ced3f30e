package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/preflylabs/prefly/internal/score"
	"github.com/preflylabs/prefly/internal/tui"
)

// newScoreCmd creates the score command.
func newScoreCmd(flags *GlobalFlags) *cobra.Command {
	var wholeSprint bool

	cmd := &cobra.Command{
		Use:   "score [task-id]",
		Short: "Confidence report for a task or the whole sprint",
		Long: `Score structural completeness: five criteria (agent, patterns,
deliverables, validation criteria, rationale) each contribute 0.2.

With a task id, reports that task's confidence, recommended action, and any
unmet criteria. With --sprint, reports the aggregate over all tasks.

Examples:
  prefly score API-002
  prefly score --sprint
  prefly score --sprint --output json

Exit codes:
  0: Success
  1: Task not found or error
  2: Invalid arguments`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := ""
			if len(args) == 1 {
				taskID = args[0]
			}
			return runScore(cmd.Context(), os.Stdout, flags, taskID, wholeSprint)
		},
	}

	cmd.Flags().BoolVar(&wholeSprint, "sprint", false, "score every task and report the aggregate")

	return cmd
}

// runScore executes the score command.
func runScore(ctx context.Context, w io.Writer, flags *GlobalFlags, taskID string, wholeSprint bool) error {
	out := tui.NewOutput(w, flags.Output)

	if (taskID == "" && !wholeSprint) || (taskID != "" && wholeSprint) {
		return fmt.Errorf("invalid argument: provide either a task id or --sprint")
	}

	e, err := loadEngine(ctx)
	if err != nil {
		out.Error(err)
		return err
	}

	if wholeSprint {
		return printSprintScore(out, flags, e)
	}

	task, ok := e.sprint.Get(taskID)
	if !ok {
		err := taskNotFound(taskID)
		out.Error(err)
		return err
	}

	result := score.Score(&task)
	if flags.Output == OutputJSON {
		return out.JSON(result)
	}

	out.Info(fmt.Sprintf("Task %s", result.TaskID))
	out.Info(fmt.Sprintf("Confidence: %.1f", result.Confidence))
	out.Info(fmt.Sprintf("Action:     %s", result.Action))
	if len(result.Gaps) > 0 {
		out.Warning("Unmet criteria:")
		for _, criterion := range result.Gaps {
			out.Info("  - " + string(criterion))
		}
	}
	return nil
}

// printSprintScore reports the sprint-wide aggregate.
func printSprintScore(out tui.Output, flags *GlobalFlags, e *engine) error {
	aggregate := score.ScoreSprint(e.sprint.Tasks)
	if flags.Output == OutputJSON {
		return out.JSON(aggregate)
	}

	name := e.sprint.Name
	if name == "" {
		name = "sprint"
	}
	out.Info(fmt.Sprintf("Sprint %q: %d task(s)", name, aggregate.TotalTasks))
	out.Info(fmt.Sprintf("Average confidence: %.1f", aggregate.AverageConfidence))
	out.Info(fmt.Sprintf("High (accept):      %d", aggregate.Distribution.High))
	out.Info(fmt.Sprintf("Medium (fill gaps): %d", aggregate.Distribution.Medium))
	out.Info(fmt.Sprintf("Low (regenerate):   %d", aggregate.Distribution.Low))

	if aggregate.Distribution.Low > 0 {
		out.Warning("some tasks score too low to fill gaps interactively; consider regenerating them")
	}
	return nil
}
