// Package tui provides terminal user interface components for prefly.
//
// This file provides interactive menus built on Charm Huh: single selection
// and yes/no confirmation, both themed with the style system from styles.go.
// Menus support arrow-key navigation, Enter to select, and Esc to cancel.
package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	preflyerrors "github.com/preflylabs/prefly/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters left between menu
	// content and the terminal edge.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40

	// DefaultMenuWidth is used when terminal width cannot be determined.
	DefaultMenuWidth = 80
)

// ErrMenuCanceled is returned when the user cancels a menu with Esc.
var ErrMenuCanceled = preflyerrors.ErrMenuCanceled

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text appended to the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// adaptWidth returns an appropriate menu width based on terminal size.
func adaptWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultMenuWidth
	}

	available := width - TerminalEdgeMargin
	if available < MinMenuWidth {
		return MinMenuWidth
	}
	return available
}

// runField creates and runs a one-field form with the shared theme.
// Without a terminal on stdin the form cannot run; the menu reports a
// cancellation so non-interactive callers degrade cleanly.
func runField(field huh.Field, errorContext string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(PreflyTheme()).
		WithWidth(adaptWidth())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}
	return nil
}

// PreflyTheme returns a Huh theme mapped to the colors from styles.go.
func PreflyTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// Select presents a single-selection menu and returns the selected value.
// Returns ErrMenuCanceled if the user presses Esc.
func Select(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", preflyerrors.ErrNoMenuOptions
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		huhOptions[i] = huh.NewOption(label, opt.Value)
	}

	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)

	if err := runField(field, "select menu failed"); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm presents a yes/no confirmation prompt.
// Returns the user's choice or ErrMenuCanceled if canceled.
func Confirm(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runField(field, "confirm prompt failed"); err != nil {
		return false, err
	}
	return confirmed, nil
}
