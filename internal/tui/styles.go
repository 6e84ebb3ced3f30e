// Package tui provides terminal user interface components for prefly.
//
// A centralized style system using Lip Gloss keeps component styling
// consistent. All colors use AdaptiveColor for light/dark terminal support,
// and the NO_COLOR environment variable is respected.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/preflylabs/prefly/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and primary actions.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success states and completed items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for warning states and attention-required items.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error states and blocking gaps.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/inactive states and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb, following the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// TaskStatusIcon returns the icon/symbol for a given task status.
// Status displays keep triple redundancy: icon + color + text.
func TaskStatusIcon(status constants.TaskStatus) string {
	icons := map[constants.TaskStatus]string{
		constants.TaskStatusPending:    "○", // Empty circle - waiting
		constants.TaskStatusInProgress: "●", // Filled circle - active
		constants.TaskStatusCompleted:  "✓", // Checkmark - done
		constants.TaskStatusBlocked:    "⚠", // Warning - needs attention
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// TaskStatusColors returns the semantic color definitions for task statuses.
func TaskStatusColors() map[constants.TaskStatus]lipgloss.AdaptiveColor {
	return map[constants.TaskStatus]lipgloss.AdaptiveColor{
		constants.TaskStatusPending:    {Light: "#0087AF", Dark: "#00D7FF"}, // Blue
		constants.TaskStatusInProgress: {Light: "#0087AF", Dark: "#00D7FF"}, // Blue
		constants.TaskStatusCompleted:  {Light: "#00875F", Dark: "#00FF87"}, // Green
		constants.TaskStatusBlocked:    {Light: "#D7AF00", Dark: "#FFD700"}, // Yellow
	}
}

// ConfidenceStyle returns the style for a confidence value: green at or
// above the accept threshold, yellow in the fill-gaps band, red below.
func ConfidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence >= constants.ConfidenceAcceptThreshold:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	case confidence >= constants.ConfidenceFillGapsThreshold:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	}
}

// FormatStatusWithIcon formats a status with its icon and text.
func FormatStatusWithIcon(status constants.TaskStatus, text string) string {
	return TaskStatusIcon(status) + " " + text
}
