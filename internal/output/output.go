// Package output renders command results in either human or JSON form
// and maps error classes to process exit codes.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprintdeck/sprintdeck/internal/render"
)

// Writer handles output for a command, dispatching between JSON and
// human-readable formats based on mode flags.
type Writer struct {
	JSONMode  bool
	QuietMode bool
	Stdout    io.Writer
	Stderr    io.Writer
}

// New creates a Writer configured by the given mode flags.
// Data output goes to os.Stdout; diagnostics go to os.Stderr.
func New(jsonMode, quietMode bool) *Writer {
	return &Writer{
		JSONMode:  jsonMode,
		QuietMode: quietMode,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Success renders a successful result. In JSON mode the data is wrapped
// in a success envelope on Stdout; in human mode the message alone is
// printed. Multi-line messages (tables, boards) are printed verbatim.
func (w *Writer) Success(data any, message string) {
	if w.JSONMode {
		writeSuccessEnvelope(w.Stdout, data, message)
		return
	}
	writeHumanSuccess(w.Stdout, message)
}

// Error renders an error and returns the exit code for its class. In
// JSON mode the envelope goes to Stdout; in human mode the message goes
// to Stderr.
func (w *Writer) Error(err error, code ErrorCode) int {
	if w.JSONMode {
		writeErrorEnvelope(w.Stdout, err, code)
	} else {
		writeHumanError(w.Stderr, err)
	}
	return ExitCodeFor(code)
}

// Info writes an informational message to Stderr. Suppressed in quiet
// mode and in JSON mode, where the envelope on Stdout is the sole
// structured output.
func (w *Writer) Info(format string, args ...any) {
	if w.QuietMode || w.JSONMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if render.ColorsEnabled() {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		fmt.Fprintf(w.Stderr, "%s %s\n", dim.Render("ℹ"), dim.Render(msg))
	} else {
		fmt.Fprintln(w.Stderr, msg)
	}
}

// Warn writes a warning to Stderr. Warnings survive quiet mode but are
// suppressed in JSON mode.
func (w *Writer) Warn(format string, args ...any) {
	if w.JSONMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if render.ColorsEnabled() {
		bold := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
		fmt.Fprintf(w.Stderr, "%s %s %s\n", bold.Render("⚠"), bold.Render("Warning:"), msg)
	} else {
		fmt.Fprintf(w.Stderr, "Warning: %s\n", msg)
	}
}
