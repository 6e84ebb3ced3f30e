package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflylabs/prefly/internal/domain"
	preflyerrors "github.com/preflylabs/prefly/internal/errors"
	"github.com/preflylabs/prefly/internal/question"
	"github.com/preflylabs/prefly/internal/wizard"
)

// threeQuestions returns a required single-choice, a required boolean, and
// an optional free-text question, mirroring a typical gap mix.
func threeQuestions() []domain.Question {
	return question.FromGaps([]domain.Gap{
		{Kind: domain.GapMissingFile, Severity: domain.SeverityBlocking, Subject: "a.go"},
		{Kind: domain.GapPreflightViolation, Severity: domain.SeverityBlocking, Subject: ".prefly/sprint.yaml"},
		{Kind: domain.GapMissingTestStrategy, Severity: domain.SeverityAdvisory, Subject: "ui-agent"},
	})
}

// mustApply applies the event and fails the test on a rejected transition.
func mustApply(t *testing.T, s wizard.State, e wizard.Event) wizard.State {
	t.Helper()
	next, err := wizard.Apply(s, e)
	require.NoError(t, err)
	return next
}

func TestNewSession(t *testing.T) {
	t.Run("starts active at first question", func(t *testing.T) {
		s, err := wizard.NewSession(threeQuestions())
		require.NoError(t, err)

		assert.Equal(t, wizard.PhaseActive, s.Phase)
		assert.Zero(t, s.Current)
		assert.NotEmpty(t, s.SessionID)
		assert.Empty(t, s.Answers)
	})

	t.Run("empty question list is rejected", func(t *testing.T) {
		_, err := wizard.NewSession(nil)
		assert.ErrorIs(t, err, preflyerrors.ErrNoQuestions)
	})
}

func TestApply_AnswerValidation(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	t.Run("single choice rejects values outside options", func(t *testing.T) {
		_, err := wizard.Apply(s, wizard.Answer{Value: "Delete the file"})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)
	})

	t.Run("single choice accepts listed option", func(t *testing.T) {
		next := mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
		q := next.CurrentQuestion()
		a, ok := next.AnswerFor(q.ID)
		require.True(t, ok)
		assert.Equal(t, question.OptionCreateFile, a.Value)
	})

	t.Run("boolean accepts only yes or no", func(t *testing.T) {
		atBool := mustApply(t, mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile}), wizard.Next{})

		_, err := wizard.Apply(atBool, wizard.Answer{Value: "maybe"})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)

		answered := mustApply(t, atBool, wizard.Answer{Value: "yes"})
		assert.True(t, answered.Answered(answered.CurrentQuestion().ID))
	})

	t.Run("free text rejects empty", func(t *testing.T) {
		atText := mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
		atText = mustApply(t, atText, wizard.Next{})
		atText = mustApply(t, atText, wizard.Answer{Value: "yes"})
		atText = mustApply(t, atText, wizard.Next{})

		_, err := wizard.Apply(atText, wizard.Answer{Value: ""})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)
	})
}

func TestApply_Navigation(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	t.Run("next requires answer on required question", func(t *testing.T) {
		_, err := wizard.Apply(s, wizard.Next{})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)
	})

	t.Run("back clamps at zero", func(t *testing.T) {
		same := mustApply(t, s, wizard.Back{})
		assert.Zero(t, same.Current)
	})

	t.Run("next clamps at the last question", func(t *testing.T) {
		end := mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
		end = mustApply(t, end, wizard.Next{})
		end = mustApply(t, end, wizard.Answer{Value: "yes"})
		end = mustApply(t, end, wizard.Next{})
		require.True(t, end.IsLast())

		// The optional last question allows Next, which must be a no-op.
		same := mustApply(t, end, wizard.Next{})
		assert.Equal(t, end.Current, same.Current)
	})

	t.Run("skip on required question is rejected", func(t *testing.T) {
		_, err := wizard.Apply(s, wizard.Skip{})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)
	})
}

func TestApply_AnswersPersistAcrossNavigation(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	q1 := s.Questions[0]
	q2 := s.Questions[1]

	// Answer Q1, move to Q2, answer it, then navigate Back to Q1.
	s = mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
	s = mustApply(t, s, wizard.Next{})
	s = mustApply(t, s, wizard.Answer{Value: "yes"})
	s = mustApply(t, s, wizard.Back{})

	require.Zero(t, s.Current)

	a1, ok := s.AnswerFor(q1.ID)
	require.True(t, ok, "Q1's answer must survive navigation")
	assert.Equal(t, question.OptionCreateFile, a1.Value)

	a2, ok := s.AnswerFor(q2.ID)
	require.True(t, ok, "Q2's answer must survive navigating back to Q1")
	assert.Equal(t, "yes", a2.Value)
}

func TestApply_StateValueSemantics(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	answered := mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})

	assert.Empty(t, s.Answers, "original state must not observe the new answer")
	assert.Len(t, answered.Answers, 1)
}

func TestApply_Generate(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	t.Run("rejected before the last question", func(t *testing.T) {
		_, err := wizard.Apply(s, wizard.Generate{})
		assert.ErrorIs(t, err, preflyerrors.ErrInvalidEvent)
	})

	end := mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
	end = mustApply(t, end, wizard.Next{})
	end = mustApply(t, end, wizard.Answer{Value: "yes"})
	end = mustApply(t, end, wizard.Next{})
	require.True(t, end.IsLast())

	t.Run("accepted with optional question skipped", func(t *testing.T) {
		assert.True(t, end.CanGenerate())

		done := mustApply(t, end, wizard.Generate{})
		assert.Equal(t, wizard.PhaseCompleted, done.Phase)
		assert.Len(t, done.Answers, 2)
	})

	t.Run("optional answer is included when given", func(t *testing.T) {
		withOptional := mustApply(t, end, wizard.Answer{Value: "Table-driven tests for the view layer."})
		done := mustApply(t, withOptional, wizard.Generate{})
		assert.Len(t, done.Answers, 3)
	})
}

func TestApply_GenerateRejectionKeepsStateActive(t *testing.T) {
	// Two required questions; answer only the second, stand on it, and
	// attempt Generate: the first is still unanswered.
	questions := question.FromGaps([]domain.Gap{
		{Kind: domain.GapMissingTestStrategy, Severity: domain.SeverityAdvisory, Subject: "ui-agent"},
		{Kind: domain.GapUnmetDependency, Severity: domain.SeverityBlocking, Subject: "DB-001"},
	})

	s, err := wizard.NewSession(questions)
	require.NoError(t, err)

	s = mustApply(t, s, wizard.Skip{}) // optional Q1 skipped
	require.True(t, s.IsLast())

	_, genErr := wizard.Apply(s, wizard.Generate{})
	assert.ErrorIs(t, genErr, preflyerrors.ErrRequiredUnanswered)
	assert.Equal(t, wizard.PhaseActive, s.Phase, "state remains active after rejection")

	s = mustApply(t, s, wizard.Answer{Value: "yes"})
	done := mustApply(t, s, wizard.Generate{})
	assert.Equal(t, wizard.PhaseCompleted, done.Phase)
}

func TestApply_Cancel(t *testing.T) {
	s, err := wizard.NewSession(threeQuestions())
	require.NoError(t, err)

	s = mustApply(t, s, wizard.Answer{Value: question.OptionCreateFile})
	cancelled := mustApply(t, s, wizard.Cancel{})

	assert.Equal(t, wizard.PhaseCancelled, cancelled.Phase)
	assert.Nil(t, cancelled.Answers, "cancel retains no answers")
}

func TestApply_TerminalStatesRejectEvents(t *testing.T) {
	questions := question.FromGaps([]domain.Gap{
		{Kind: domain.GapPreflightViolation, Severity: domain.SeverityBlocking, Subject: "x"},
	})

	s, err := wizard.NewSession(questions)
	require.NoError(t, err)

	s = mustApply(t, s, wizard.Answer{Value: "yes"})
	done := mustApply(t, s, wizard.Generate{})

	_, err = wizard.Apply(done, wizard.Next{})
	assert.ErrorIs(t, err, preflyerrors.ErrWizardClosed)

	cancelled := mustApply(t, s, wizard.Cancel{})
	_, err = wizard.Apply(cancelled, wizard.Answer{Value: "yes"})
	assert.ErrorIs(t, err, preflyerrors.ErrWizardClosed)
}
