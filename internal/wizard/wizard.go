// Package wizard implements the clarification wizard as a pure state machine.
//
// The wizard walks the user through the questions generated from detected
// gaps. It is deliberately host-agnostic: state transitions are an explicit
// Apply(state, event) function with no UI coupling, so the machine can be
// driven by a terminal UI, a test, or any other host event loop. State is a
// plain value owned by the caller; an abandoned session leaks nothing.
//
// The core invariant is answer persistence: answers already recorded are
// never cleared by Next/Back navigation. Only Cancel discards them.
package wizard

import (
	"github.com/google/uuid"

	"github.com/preflylabs/prefly/internal/domain"
	"github.com/preflylabs/prefly/internal/errors"
)

// Phase is the lifecycle phase of a wizard session.
type Phase string

// Phase constants. Completed and Cancelled are terminal.
const (
	// PhaseActive means the session is accepting events.
	PhaseActive Phase = "active"

	// PhaseCompleted means Generate succeeded; answers are final.
	PhaseCompleted Phase = "completed"

	// PhaseCancelled means the user aborted; no answers are retained.
	PhaseCancelled Phase = "cancelled"
)

// State is one wizard session. It is a plain value: Apply returns a new
// State and never mutates its input, so callers may keep old states (e.g.
// for rendering) without surprises.
type State struct {
	// SessionID uniquely identifies the session, for logging.
	SessionID string

	// Questions is the ordered, immutable question list.
	Questions []domain.Question

	// Answers maps question id to the recorded answer. The map persists
	// across navigation for the whole session.
	Answers map[string]domain.Answer

	// Current is the index of the question being shown.
	// Invariant while active: 0 <= Current < len(Questions).
	Current int

	// Phase is active, completed, or cancelled.
	Phase Phase
}

// Event is a wizard transition trigger. The concrete types below form a
// closed set; Apply switches exhaustively over them.
type Event interface {
	isEvent()
}

// Answer records a response to the current question.
type Answer struct {
	// Value is the response: free text, a selected option, or "yes"/"no".
	Value string
}

// Next advances to the next question.
type Next struct{}

// Back returns to the previous question.
type Back struct{}

// Skip advances past an optional question without answering.
type Skip struct{}

// Generate finishes the session once every required question is answered.
type Generate struct{}

// Cancel aborts the session, discarding all answers.
type Cancel struct{}

func (Answer) isEvent()   {}
func (Next) isEvent()     {}
func (Back) isEvent()     {}
func (Skip) isEvent()     {}
func (Generate) isEvent() {}
func (Cancel) isEvent()   {}

// NewSession starts a session over the given questions. The orchestrator
// never starts a wizard with zero questions; attempting to returns
// ErrNoQuestions.
func NewSession(questions []domain.Question) (State, error) {
	if len(questions) == 0 {
		return State{}, errors.ErrNoQuestions
	}
	return State{
		SessionID: uuid.NewString(),
		Questions: questions,
		Answers:   make(map[string]domain.Answer),
		Current:   0,
		Phase:     PhaseActive,
	}, nil
}

// Apply executes one transition and returns the resulting state.
//
// Rejected transitions (skipping a required question, generating with
// required questions unanswered) return the unchanged state together with a
// typed error; they are recoverable validation failures for the host to
// display, not crash paths.
func Apply(s State, e Event) (State, error) {
	if s.Phase != PhaseActive {
		return s, errors.ErrWizardClosed
	}

	switch ev := e.(type) {
	case Answer:
		return applyAnswer(s, ev)
	case Next:
		return applyNext(s)
	case Back:
		return applyBack(s)
	case Skip:
		return applySkip(s)
	case Generate:
		return applyGenerate(s)
	case Cancel:
		s.Phase = PhaseCancelled
		s.Answers = nil
		return s, nil
	default:
		return s, errors.ErrInvalidEvent
	}
}

// applyAnswer records a response to the current question. The answers map
// is copied so earlier State values keep their view of the session.
func applyAnswer(s State, ev Answer) (State, error) {
	q := s.Questions[s.Current]
	if !validAnswer(q, ev.Value) {
		return s, errors.Wrapf(errors.ErrInvalidEvent, "answer %q is not valid for question kind %s", ev.Value, q.Kind)
	}

	answers := make(map[string]domain.Answer, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[q.ID] = domain.Answer{QuestionID: q.ID, Value: ev.Value}
	s.Answers = answers
	return s, nil
}

// applyNext advances the index. Valid only when the current question is
// optional or already answered. Clamped: a Next on the last question is a
// no-op (the host shows Generate there instead).
func applyNext(s State) (State, error) {
	q := s.Questions[s.Current]
	if q.Required && !s.Answered(q.ID) {
		return s, errors.Wrap(errors.ErrInvalidEvent, "current question requires an answer")
	}
	if s.Current < len(s.Questions)-1 {
		s.Current++
	}
	return s, nil
}

// applyBack steps the index back, clamped at zero.
func applyBack(s State) (State, error) {
	if s.Current > 0 {
		s.Current--
	}
	return s, nil
}

// applySkip advances past an optional question without recording an answer.
func applySkip(s State) (State, error) {
	if s.Questions[s.Current].Required {
		return s, errors.Wrap(errors.ErrInvalidEvent, "required questions cannot be skipped")
	}
	if s.Current < len(s.Questions)-1 {
		s.Current++
	}
	return s, nil
}

// applyGenerate completes the session. Offered only on the last question,
// and only when every required question across the whole list has an
// answer; otherwise the state is unchanged and the host displays the
// corrective message.
func applyGenerate(s State) (State, error) {
	if s.Current != len(s.Questions)-1 {
		return s, errors.Wrap(errors.ErrInvalidEvent, "generate is only available on the last question")
	}
	if unanswered := s.RequiredUnanswered(); len(unanswered) > 0 {
		return s, errors.ErrRequiredUnanswered
	}
	s.Phase = PhaseCompleted
	return s, nil
}

// validAnswer checks the response shape against the question kind.
func validAnswer(q domain.Question, value string) bool {
	switch q.Kind {
	case domain.QuestionFreeText:
		return value != ""
	case domain.QuestionBoolean:
		return value == "yes" || value == "no"
	case domain.QuestionSingleChoice:
		for _, opt := range q.Options {
			if opt == value {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CurrentQuestion returns the question at the current index.
func (s State) CurrentQuestion() domain.Question {
	return s.Questions[s.Current]
}

// Answered reports whether the question with the given id has an answer.
func (s State) Answered(id string) bool {
	_, ok := s.Answers[id]
	return ok
}

// AnswerFor returns the recorded answer for the question id, if any.
func (s State) AnswerFor(id string) (domain.Answer, bool) {
	a, ok := s.Answers[id]
	return a, ok
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Current == len(s.Questions)-1
}

// CanGenerate reports whether Generate would currently succeed.
func (s State) CanGenerate() bool {
	return s.IsLast() && len(s.RequiredUnanswered()) == 0
}

// RequiredUnanswered returns every required question that lacks an answer,
// in question order.
func (s State) RequiredUnanswered() []domain.Question {
	var unanswered []domain.Question
	for _, q := range s.Questions {
		if q.Required && !s.Answered(q.ID) {
			unanswered = append(unanswered, q)
		}
	}
	return unanswered
}
