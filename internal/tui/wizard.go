// Package tui provides terminal user interface components for prefly.
//
// This file hosts the clarification wizard view: a Bubble Tea model that
// renders one question at a time and translates key presses into events for
// the pure state machine in internal/wizard. The model owns no answer state
// of its own; everything authoritative lives in the wizard.State value.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/preflylabs/prefly/internal/domain"
	preflyerrors "github.com/preflylabs/prefly/internal/errors"
	"github.com/preflylabs/prefly/internal/wizard"
)

// wizard view layout constants.
const (
	wizardCardWidth = 72
	wizardTextWidth = wizardCardWidth - 4
)

// booleanChoices is the fixed option list rendered for boolean questions.
var booleanChoices = []string{"yes", "no"} //nolint:gochecknoglobals // Fixed choice list

// WizardModel is the Bubble Tea model for a clarification session.
type WizardModel struct {
	state   wizard.State
	input   textinput.Model
	cursor  int    // highlighted choice for single-choice/boolean questions
	status  string // transient feedback from a rejected transition
	styles  *wizardStyles
	aborted bool
}

// wizardStyles holds the lipgloss styles for the wizard card.
type wizardStyles struct {
	card     lipgloss.Style
	title    lipgloss.Style
	counter  lipgloss.Style
	help     lipgloss.Style
	choice   lipgloss.Style
	selected lipgloss.Style
	answered lipgloss.Style
	problem  lipgloss.Style
}

func newWizardStyles() *wizardStyles {
	return &wizardStyles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			Width(wizardCardWidth),
		title:    lipgloss.NewStyle().Bold(true),
		counter:  lipgloss.NewStyle().Foreground(ColorMuted),
		help:     lipgloss.NewStyle().Foreground(ColorMuted),
		choice:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		answered: lipgloss.NewStyle().Foreground(ColorSuccess),
		problem:  lipgloss.NewStyle().Foreground(ColorError),
	}
}

// NewWizardModel creates the model for a session.
func NewWizardModel(state wizard.State) WizardModel {
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 500
	input.Width = wizardTextWidth
	input.Focus()

	m := WizardModel{
		state:  state,
		input:  input,
		styles: newWizardStyles(),
	}
	m.syncToQuestion()
	return m
}

// State returns the wizard state driven by this model.
func (m WizardModel) State() wizard.State {
	return m.state
}

// Init implements tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model: key presses become wizard events.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.state, _ = wizard.Apply(m.state, wizard.Cancel{})
		m.aborted = true
		return m, tea.Quit

	case "enter":
		return m.handleEnter()

	case "left", "shift+tab":
		m.applyEvent(wizard.Back{})
		return m, nil

	case "right", "tab":
		if m.state.CurrentQuestion().Required || m.state.Answered(m.state.CurrentQuestion().ID) {
			m.applyEvent(wizard.Next{})
		} else {
			m.applyEvent(wizard.Skip{})
		}
		return m, nil

	case "up":
		if m.choiceCount() > 0 && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if n := m.choiceCount(); n > 0 && m.cursor < n-1 {
			m.cursor++
		}
		return m, nil
	}

	// Remaining keys feed the text input on free-text questions.
	if m.state.CurrentQuestion().Kind == domain.QuestionFreeText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEnter answers the current question, then advances; on the last
// question with everything required answered, it generates and quits.
func (m WizardModel) handleEnter() (tea.Model, tea.Cmd) {
	q := m.state.CurrentQuestion()

	value := ""
	switch q.Kind {
	case domain.QuestionFreeText:
		value = strings.TrimSpace(m.input.Value())
	case domain.QuestionBoolean:
		value = booleanChoices[m.cursor]
	case domain.QuestionSingleChoice:
		value = q.Options[m.cursor]
	}

	if value != "" {
		m.applyEvent(wizard.Answer{Value: value})
	}

	if m.state.CanGenerate() {
		m.applyEvent(wizard.Generate{})
		if m.state.Phase == wizard.PhaseCompleted {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.state.IsLast() {
		// Last question but something required is still open; surface it.
		m.applyEvent(wizard.Generate{})
		return m, nil
	}

	m.applyEvent(wizard.Next{})
	return m, nil
}

// applyEvent applies a wizard event, keeping rejection feedback for the view.
func (m *WizardModel) applyEvent(e wizard.Event) {
	before := m.state.Current
	next, err := wizard.Apply(m.state, e)
	if err != nil {
		m.status = preflyerrors.UserMessage(err)
		return
	}
	m.status = ""
	m.state = next
	if m.state.Phase == wizard.PhaseActive && m.state.Current != before {
		m.syncToQuestion()
	}
}

// syncToQuestion resets per-question view state when the index changes.
func (m *WizardModel) syncToQuestion() {
	m.cursor = 0
	m.input.SetValue("")

	q := m.state.CurrentQuestion()
	if a, ok := m.state.AnswerFor(q.ID); ok {
		switch q.Kind {
		case domain.QuestionFreeText:
			m.input.SetValue(a.Value)
		case domain.QuestionBoolean:
			if a.Value == "no" {
				m.cursor = 1
			}
		case domain.QuestionSingleChoice:
			for i, opt := range q.Options {
				if opt == a.Value {
					m.cursor = i
				}
			}
		}
	}
}

// choiceCount returns the number of selectable choices for the current
// question, zero for free text.
func (m WizardModel) choiceCount() int {
	switch m.state.CurrentQuestion().Kind {
	case domain.QuestionBoolean:
		return len(booleanChoices)
	case domain.QuestionSingleChoice:
		return len(m.state.CurrentQuestion().Options)
	default:
		return 0
	}
}

// View implements tea.Model.
func (m WizardModel) View() string {
	if m.state.Phase != wizard.PhaseActive {
		return ""
	}

	q := m.state.CurrentQuestion()
	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", m.state.Current+1, len(m.state.Questions))
	if !q.Required {
		counter += " (optional)"
	}
	b.WriteString(m.styles.counter.Render(counter))
	b.WriteString("\n\n")

	b.WriteString(m.styles.title.Render(wrapText(q.Text, wizardTextWidth)))
	b.WriteString("\n")

	if q.HelpText != "" {
		b.WriteString(m.styles.help.Render(wrapText(q.HelpText, wizardTextWidth)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch q.Kind {
	case domain.QuestionFreeText:
		b.WriteString(m.input.View())
	case domain.QuestionBoolean:
		b.WriteString(m.renderChoices(booleanChoices))
	case domain.QuestionSingleChoice:
		b.WriteString(m.renderChoices(q.Options))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.problem.Render(wrapText(m.status, wizardTextWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.helpLine(q)))

	return m.styles.card.Render(b.String()) + "\n"
}

// renderChoices renders a selectable list with answered-state markers.
func (m WizardModel) renderChoices(choices []string) string {
	q := m.state.CurrentQuestion()
	answered, hasAnswer := m.state.AnswerFor(q.ID)

	var b strings.Builder
	for i, choice := range choices {
		prefix := "  "
		style := m.styles.choice
		if i == m.cursor {
			prefix = "> "
			style = m.styles.selected
		}
		line := prefix + choice
		if hasAnswer && answered.Value == choice {
			line += " ✓"
			if i != m.cursor {
				style = m.styles.answered
			}
		}
		b.WriteString(style.Render(line))
		if i < len(choices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// helpLine returns the key hints for the current question.
func (m WizardModel) helpLine(q domain.Question) string {
	hints := []string{"[enter] answer"}
	if m.choiceCount() > 0 {
		hints = append([]string{"[↑↓] choose"}, hints...)
	}
	if m.state.Current > 0 {
		hints = append(hints, "[←] back")
	}
	if !q.Required && !m.state.IsLast() {
		hints = append(hints, "[→] skip")
	}
	if m.state.IsLast() && m.state.CanGenerate() {
		hints = append(hints, "[enter] generate")
	}
	hints = append(hints, "[esc] cancel")
	return strings.Join(hints, "  ")
}

// wrapText wraps text at the given display width, breaking on spaces.
// Widths are measured in terminal cells so wide runes wrap correctly.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var (
		b    strings.Builder
		line int
	)
	for i, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
			b.WriteString(word)
			line = w
		case line+1+w > width:
			b.WriteString("\n")
			b.WriteString(word)
			line = w
		default:
			b.WriteString(" ")
			b.WriteString(word)
			line += 1 + w
		}
	}
	return b.String()
}

// RunWizard runs the wizard session to completion on the terminal and
// returns the final state. A cancelled session returns ErrWizardCanceled.
func RunWizard(state wizard.State) (wizard.State, error) {
	model := NewWizardModel(state)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return state, fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := final.(WizardModel)
	if !ok {
		return state, preflyerrors.ErrWizardCanceled
	}
	if m.state.Phase != wizard.PhaseCompleted {
		return m.state, preflyerrors.ErrWizardCanceled
	}
	return m.state, nil
}
