// Package analysis orchestrates one task analysis pass: score, detect,
// and either hand back a ready context or the questions for the wizard.
//
// The orchestrator is synchronous and holds no per-analysis state. The
// caller drives the wizard over the returned questions and, on completion,
// calls Finalize with the collected answers. Answers are merged verbatim
// into the context; gaps are not re-detected afterwards.
package analysis

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/preflylabs/prefly/internal/clock"
	"github.com/preflylabs/prefly/internal/config"
	"github.com/preflylabs/prefly/internal/domain"
	"github.com/preflylabs/prefly/internal/gap"
	"github.com/preflylabs/prefly/internal/question"
	"github.com/preflylabs/prefly/internal/score"
)

// Orchestrator runs the analysis pipeline for one task at a time.
type Orchestrator struct {
	cfg      *config.Config
	detector *gap.Detector
	clk      clock.Clock
}

// NewOrchestrator creates an Orchestrator. A nil clock defaults to the
// system clock.
func NewOrchestrator(cfg *config.Config, clk clock.Clock) *Orchestrator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Orchestrator{
		cfg:      cfg,
		detector: gap.NewDetector(cfg),
		clk:      clk,
	}
}

// Analyze scores the task, runs gap detection, and returns the result.
//
// The confidence score is informational only: it never gates the outcome.
// With no gaps the result is ready and carries the merged context; the
// wizard is never invoked. Otherwise the result carries the generated
// questions for the caller to drive the wizard with.
func (o *Orchestrator) Analyze(ctx context.Context, task *domain.Task, view gap.View) (domain.AnalysisResult, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "analysis").
		Str("task_id", task.ID).
		Logger()

	taskScore := score.Score(task)

	gaps, err := o.detector.Detect(ctx, task, view)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	if len(gaps) == 0 {
		merged := o.buildContext(task, nil)
		logger.Info().
			Float64("confidence", taskScore.Confidence).
			Msg("task ready")
		return domain.AnalysisResult{
			Status:  domain.AnalysisReady,
			Score:   taskScore,
			Context: &merged,
		}, nil
	}

	logger.Info().
		Float64("confidence", taskScore.Confidence).
		Int("gaps", len(gaps)).
		Msg("task needs clarification")

	return domain.AnalysisResult{
		Status:    domain.AnalysisNeedsClarification,
		Score:     taskScore,
		Gaps:      gaps,
		Questions: question.FromGaps(gaps),
	}, nil
}

// Finalize merges the task, the config-derived fields, and the wizard
// answers into the ready context. Answers are trusted as given; there is
// no second detection pass over them.
func (o *Orchestrator) Finalize(task *domain.Task, answers map[string]domain.Answer) domain.Context {
	return o.buildContext(task, answers)
}

// buildContext assembles the context payload for the prompt assembler.
func (o *Orchestrator) buildContext(task *domain.Task, answers map[string]domain.Answer) domain.Context {
	merged := domain.Context{
		Task:        *task,
		Answers:     answers,
		GeneratedAt: o.clk.Now(),
	}

	if o.cfg != nil {
		if coverage, ok := o.cfg.CoverageFor(task.Agent); ok {
			merged.CoverageTarget = coverage
		}
		merged.ProtectedPaths = gap.ProtectedPaths(o.cfg.Protected.Patterns, task.FilesToModify)
	}

	return merged
}
