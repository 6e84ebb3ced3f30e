package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/preflylabs/prefly/internal/analysis"
	"github.com/preflylabs/prefly/internal/backlog"
	"github.com/preflylabs/prefly/internal/clock"
	"github.com/preflylabs/prefly/internal/config"
	"github.com/preflylabs/prefly/internal/domain"
	preflyerrors "github.com/preflylabs/prefly/internal/errors"
	"github.com/preflylabs/prefly/internal/gap"
	"github.com/preflylabs/prefly/internal/tui"
	"github.com/preflylabs/prefly/internal/wizard"
)

// engine bundles the loaded config, sprint plan, and orchestrator that
// every analysis-driven command needs.
type engine struct {
	cfg    *config.Config
	store  *backlog.Store
	sprint *backlog.Sprint
	orch   *analysis.Orchestrator
}

// loadEngine loads configuration and the sprint plan for the current
// project.
func loadEngine(ctx context.Context) (*engine, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	store, err := backlog.NewStore(cfg.Project.BaseDir)
	if err != nil {
		return nil, err
	}

	sprint, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &engine{
		cfg:    cfg,
		store:  store,
		sprint: sprint,
		orch:   analysis.NewOrchestrator(cfg, clock.RealClock{}),
	}, nil
}

// view builds the detector's slice of live project state from the sprint.
func (e *engine) view() gap.View {
	return gap.View{
		Completed: e.sprint.Completed(),
		Pending:   e.sprint.Pending(),
	}
}

// taskNotFound wraps ErrTaskNotFound with the offending id.
func taskNotFound(id string) error {
	return preflyerrors.Wrapf(preflyerrors.ErrTaskNotFound, "task %q", id)
}

// isInteractive reports whether the command may open interactive UI:
// a real terminal on stdin, text output, and no explicit opt-out.
func isInteractive(flags *GlobalFlags, noInteractive bool) bool {
	if noInteractive || flags.Output == OutputJSON {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runAnalysisFlow analyzes one task and handles both outcomes: a ready
// context is emitted directly; detected gaps either launch the wizard
// (interactive) or print the question list (non-interactive).
func runAnalysisFlow(ctx context.Context, w io.Writer, flags *GlobalFlags, e *engine, task domain.Task, interactive bool) error {
	out := tui.NewOutput(w, flags.Output)
	logger := GetLogger()

	result, err := e.orch.Analyze(ctx, &task, e.view())
	if err != nil {
		out.Error(err)
		return err
	}

	logger.Debug().
		Str("task_id", task.ID).
		Str("status", result.Status.String()).
		Float64("confidence", result.Score.Confidence).
		Msg("analysis finished")

	out.Info(fmt.Sprintf("Task %s: confidence %.1f (%s)", task.ID, result.Score.Confidence, result.Score.Action))

	if result.Status == domain.AnalysisReady {
		out.Success("no gaps detected; context is ready")
		return out.JSON(result.Context)
	}

	if !interactive {
		if flags.Output == OutputJSON {
			return out.JSON(result)
		}
		printGapsAndQuestions(out, result)
		return nil
	}

	state, err := wizard.NewSession(result.Questions)
	if err != nil {
		out.Error(err)
		return err
	}

	final, err := tui.RunWizard(state)
	if err != nil {
		out.Warning(preflyerrors.UserMessage(err))
		return err
	}

	merged := e.orch.Finalize(&task, final.Answers)
	out.Success("clarifications collected; context is ready")
	return out.JSON(merged)
}

// printGapsAndQuestions lists detected gaps and their questions as text,
// for non-interactive callers that cannot run the wizard.
func printGapsAndQuestions(out tui.Output, result domain.AnalysisResult) {
	out.Warning(fmt.Sprintf("%d gap(s) detected; run interactively to clarify", len(result.Gaps)))
	for i, q := range result.Questions {
		required := "optional"
		if q.Required {
			required = "required"
		}
		out.Info(fmt.Sprintf("%d. [%s] %s", i+1, required, q.Text))
		for _, opt := range q.Options {
			out.Info("   - " + opt)
		}
	}
}
