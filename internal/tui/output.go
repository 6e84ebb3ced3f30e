// Package tui provides terminal user interface components for prefly.
package tui

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output is the message sink every prefly command writes through. Commands
// emit human-oriented status lines (Success, Warning, Info), failures
// (Error), and machine-readable payloads (JSON) without knowing which
// rendering the user asked for; the --output flag picks the implementation.
type Output interface {
	Success(msg string)
	Error(err error)
	Warning(msg string)
	Info(msg string)
	JSON(v any) error
}

// NewOutput picks the Output implementation for the requested format.
// "json" selects the machine-parseable stream; anything else gets the
// styled terminal renderer.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}

// TTYOutput renders status lines with lipgloss styling and icon prefixes
// for interactive terminal sessions.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a styled terminal Output writing to w.
func NewTTYOutput(w io.Writer) *TTYOutput {
	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success prints a green check-marked line.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints a red cross-marked line with the error text.
func (o *TTYOutput) Error(err error) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
}

// Warning prints a yellow warning-marked line.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints an unadorned informational line.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// JSON pretty-prints v. Terminal sessions still get indented JSON when a
// command produces a payload, e.g. a generated task context.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// JSONOutput keeps the stream machine-parseable: payloads and errors are
// emitted as JSON documents, human-oriented status lines are suppressed.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a machine-readable Output writing to w.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// Success is suppressed on the JSON stream.
func (o *JSONOutput) Success(_ string) {}

// Warning is suppressed on the JSON stream.
func (o *JSONOutput) Warning(_ string) {}

// Info is suppressed on the JSON stream.
func (o *JSONOutput) Info(_ string) {}

// Error emits the failure as a one-field JSON document so scripted callers
// can detect it without parsing styled text.
func (o *JSONOutput) Error(err error) {
	payload := struct {
		Error string `json:"error"`
	}{Error: err.Error()}
	_ = encodeJSON(o.w, payload)
}

// JSON pretty-prints v.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
