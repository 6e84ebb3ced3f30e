package domain

// QuestionKind determines how a question is rendered and answered.
type QuestionKind string

// Question kind constants.
const (
	// QuestionFreeText accepts arbitrary text.
	QuestionFreeText QuestionKind = "free_text"

	// QuestionSingleChoice accepts exactly one of the attached options.
	QuestionSingleChoice QuestionKind = "single_choice"

	// QuestionBoolean accepts yes or no.
	QuestionBoolean QuestionKind = "boolean"
)

// String returns the string representation of the QuestionKind.
func (k QuestionKind) String() string {
	return string(k)
}

// Question is derived 1:1 from a Gap by the question generator.
type Question struct {
	// ID uniquely identifies the question within one wizard session.
	ID string `json:"id"`

	// Text is the question shown to the user.
	Text string `json:"text"`

	// Kind determines the input widget (free text, single choice, boolean).
	Kind QuestionKind `json:"kind"`

	// Options holds the selectable choices for single-choice questions.
	// Empty for other kinds.
	Options []string `json:"options,omitempty"`

	// Required is true iff the source gap was blocking. The wizard refuses
	// Generate until every required question is answered.
	Required bool `json:"required"`

	// HelpText is optional supplementary guidance (e.g. the numeric
	// coverage target for a test-strategy question).
	HelpText string `json:"help_text,omitempty"`

	// Source is the gap this question resolves.
	Source Gap `json:"source"`
}

// Answer records the user's response to one question.
type Answer struct {
	// QuestionID links the answer to its question.
	QuestionID string `json:"question_id"`

	// Value is the recorded response: free text, the selected option, or
	// "yes"/"no" for boolean questions.
	Value string `json:"value"`
}
