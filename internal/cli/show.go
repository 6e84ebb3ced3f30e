package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/preflylabs/prefly/internal/domain"
	"github.com/preflylabs/prefly/internal/tui"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer for markdown
// rendering. The renderer is initialized once and reused across calls.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// newShowCmd creates the show command.
func newShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Render one task's full detail",
		Long: `Show a task in rich detail: description, rationale, dependencies,
files, deliverables, and validation criteria, with markdown rendering.

Examples:
  prefly show API-002
  prefly show API-002 --output json

Exit codes:
  0: Success
  1: Task not found or error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), os.Stdout, flags, args[0])
		},
	}
}

// runShow executes the show command.
func runShow(ctx context.Context, w io.Writer, flags *GlobalFlags, taskID string) error {
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

	if flags.Output == OutputJSON {
		return out.JSON(task)
	}

	renderMarkdown(w, taskMarkdown(&task))
	return nil
}

// taskMarkdown builds the markdown document for one task.
func taskMarkdown(task *domain.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", task.ID)
	fmt.Fprintf(&b, "**Status:** %s  \n", task.Status)
	if task.Phase != "" {
		fmt.Fprintf(&b, "**Phase:** %s  \n", task.Phase)
	}
	if task.Agent != "" {
		fmt.Fprintf(&b, "**Agent:** %s  \n", task.Agent)
	}
	if task.EstimatedTime > 0 {
		fmt.Fprintf(&b, "**Estimate:** %s  \n", task.EstimatedTime)
	}
	b.WriteString("\n")

	if task.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", task.Description)
	}
	if task.Why != "" {
		fmt.Fprintf(&b, "## Why\n\n%s\n\n", task.Why)
	}
	if task.Context != "" {
		fmt.Fprintf(&b, "## Context\n\n%s\n\n", task.Context)
	}

	writeList(&b, "Dependencies", task.Dependencies)
	writeList(&b, "Files to modify", task.FilesToModify)
	writeList(&b, "Deliverables", task.Deliverables)
	writeList(&b, "Validation criteria", task.ValidationCriteria)
	writeList(&b, "Patterns", task.Patterns)

	return b.String()
}

// writeList writes a markdown section with a bullet list, skipping empties.
func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// renderMarkdown renders markdown to the writer, falling back to the raw
// text when the renderer is unavailable.
func renderMarkdown(w io.Writer, markdown string) {
	if r := getGlamourRenderer(); r != nil {
		if rendered, err := r.Render(markdown); err == nil {
			_, _ = fmt.Fprint(w, rendered)
			return
		}
	}
	_, _ = fmt.Fprint(w, markdown)
}
