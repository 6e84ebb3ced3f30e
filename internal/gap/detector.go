// Package gap implements the gap detector: rule-based checks that decide
// whether a task is safely actionable against the live project.
//
// Unlike the confidence scorer, the detector performs I/O (filesystem
// existence checks) and consults project configuration (per-agent coverage
// policy, protected-file patterns). Four independent rules are evaluated;
// a task may surface multiple gaps simultaneously. Output ordering is
// stable (rule order, then input order) so downstream question numbering
// is deterministic.
package gap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/preflylabs/prefly/internal/config"
	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
)

// testStrategyPattern matches whole-word mentions of tests or coverage in
// deliverables or the description. Word boundaries keep unrelated words like
// "latest" or "contest" from counting as a declared test strategy.
var testStrategyPattern = regexp.MustCompile(`(?i)\btest(s|ed|ing)?\b|\bcoverage\b`) //nolint:gochecknoglobals // Static keyword pattern

// View is the slice of live project state the detector consumes: the
// dependency-completion view and the pending tasks whose deliverables may
// excuse a missing file. Both are supplied by the backlog store.
type View struct {
	// Completed maps task id to task for every completed task.
	Completed map[string]domain.Task

	// Pending lists the pending tasks, in plan order.
	Pending []domain.Task
}

// Detector evaluates the gap rules for one task at a time.
// It holds no per-task state; a single Detector may be reused across
// analyses.
type Detector struct {
	cfg     *config.Config
	baseDir string
}

// NewDetector creates a Detector. Task file paths are resolved against the
// config's project base directory; an empty base directory means the
// current working directory.
func NewDetector(cfg *config.Config) *Detector {
	baseDir := ""
	if cfg != nil {
		baseDir = cfg.Project.BaseDir
	}
	return &Detector{cfg: cfg, baseDir: baseDir}
}

// Detect runs every rule against the task and returns the detected gaps in
// stable order. Rules whose configuration is absent are skipped and logged,
// never fatal. No gap is ever silently dropped.
func (d *Detector) Detect(ctx context.Context, task *domain.Task, view View) ([]domain.Gap, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	logger := zerolog.Ctx(ctx).With().
		Str("component", "gap_detector").
		Str("task_id", task.ID).
		Logger()

	var gaps []domain.Gap

	missing, err := d.missingFiles(ctx, task, view)
	if err != nil {
		return nil, err
	}
	gaps = append(gaps, missing...)

	gaps = append(gaps, d.unmetDependencies(task, view)...)

	if d.cfg == nil {
		logger.Warn().Msg("no project config; skipping test-strategy and preflight rules")
		return gaps, nil
	}

	if g, ok := d.missingTestStrategy(task, &logger); ok {
		gaps = append(gaps, g)
	}

	gaps = append(gaps, d.preflightViolations(task, &logger)...)

	logger.Debug().Int("gaps", len(gaps)).Msg("gap detection complete")
	return gaps, nil
}

// missingFiles checks every path in FilesToModify for existence on disk.
// A missing path is excused only when another pending task's deliverables
// target it. Filesystem errors other than not-exist are treated
// conservatively as "file does not exist" so the gap is still raised.
// Existence checks run concurrently, bounded by FileCheckConcurrency;
// results keep input order.
func (d *Detector) missingFiles(ctx context.Context, task *domain.Task, view View) ([]domain.Gap, error) {
	if len(task.FilesToModify) == 0 {
		return nil, nil
	}

	exists := make([]bool, len(task.FilesToModify))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.FileCheckConcurrency)

	for i, path := range task.FilesToModify {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			_, err := os.Stat(filepath.Join(d.baseDir, path))
			exists[i] = err == nil
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var gaps []domain.Gap
	for i, path := range task.FilesToModify {
		if exists[i] {
			continue
		}
		if deliveredByPendingTask(path, task.ID, view.Pending) {
			continue
		}
		gaps = append(gaps, domain.Gap{
			Kind:     domain.GapMissingFile,
			Severity: domain.SeverityBlocking,
			Message:  fmt.Sprintf("File %q does not exist and no pending task delivers it", path),
			Subject:  path,
		})
	}
	return gaps, nil
}

// deliveredByPendingTask reports whether another pending task's deliverables
// or planned files target the given path.
func deliveredByPendingTask(path, selfID string, pending []domain.Task) bool {
	for _, other := range pending {
		if other.ID == selfID {
			continue
		}
		for _, f := range other.FilesToModify {
			if f == path {
				return true
			}
		}
		for _, deliverable := range other.Deliverables {
			if strings.Contains(deliverable, path) {
				return true
			}
		}
	}
	return false
}

// unmetDependencies emits a blocking gap for every dependency id absent
// from the completed set.
func (d *Detector) unmetDependencies(task *domain.Task, view View) []domain.Gap {
	var gaps []domain.Gap
	for _, dep := range task.Dependencies {
		if completed, ok := view.Completed[dep]; ok && completed.IsCompleted() {
			continue
		}
		gaps = append(gaps, domain.Gap{
			Kind:     domain.GapUnmetDependency,
			Severity: domain.SeverityBlocking,
			Message:  fmt.Sprintf("Dependency %q is not completed", dep),
			Subject:  dep,
		})
	}
	return gaps
}

// missingTestStrategy checks whether the task declares a test strategy when
// its agent has a nonzero required coverage. The check is skipped entirely
// for agents with no coverage requirement. Severity is blocking when the
// requirement meets the configured blocking threshold, advisory otherwise.
func (d *Detector) missingTestStrategy(task *domain.Task, logger *zerolog.Logger) (domain.Gap, bool) {
	coverage, ok := d.cfg.CoverageFor(task.Agent)
	if !ok {
		logger.Debug().Str("agent", task.Agent).Msg("no coverage policy; test-strategy rule skipped")
		return domain.Gap{}, false
	}

	if mentionsTestStrategy(task) {
		return domain.Gap{}, false
	}

	severity := domain.SeverityAdvisory
	if coverage >= d.cfg.Scoring.BlockingCoverage {
		severity = domain.SeverityBlocking
	}

	return domain.Gap{
		Kind:     domain.GapMissingTestStrategy,
		Severity: severity,
		Message: fmt.Sprintf("Agent %q requires %d%% test coverage but the task mentions no test strategy",
			task.Agent, coverage),
		Subject: task.Agent,
	}, true
}

// mentionsTestStrategy reports whether deliverables or the description
// reference tests or coverage.
func mentionsTestStrategy(task *domain.Task) bool {
	if testStrategyPattern.MatchString(task.Description) {
		return true
	}
	for _, deliverable := range task.Deliverables {
		if testStrategyPattern.MatchString(deliverable) {
			return true
		}
	}
	return false
}

// preflightViolations emits a blocking gap for every planned file matching
// a protected pattern when the task description does not reference a
// pre-change review step.
func (d *Detector) preflightViolations(task *domain.Task, logger *zerolog.Logger) []domain.Gap {
	if len(d.cfg.Protected.Patterns) == 0 {
		logger.Debug().Msg("no protected patterns configured; preflight rule skipped")
		return nil
	}

	if referencesReview(task.Description, d.cfg.Protected.ReviewKeywords) {
		return nil
	}

	var gaps []domain.Gap
	for _, path := range task.FilesToModify {
		normalized := filepath.ToSlash(path)
		for _, pattern := range d.cfg.Protected.Patterns {
			if matchGlob(normalized, filepath.ToSlash(pattern)) {
				gaps = append(gaps, domain.Gap{
					Kind:     domain.GapPreflightViolation,
					Severity: domain.SeverityBlocking,
					Message: fmt.Sprintf("File %q is protected and the task references no pre-change review step",
						path),
					Subject: path,
				})
				break
			}
		}
	}
	return gaps
}

// referencesReview reports whether the description mentions any of the
// configured review keywords.
func referencesReview(description string, keywords []string) bool {
	lower := strings.ToLower(description)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
