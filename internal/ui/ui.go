// Package ui provides terminal output helpers with TTY detection.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// UI bundles the output writers with the styling appropriate for them:
// full lipgloss styling on a TTY, plain text when piped, raw JSON when
// the caller asked for it.
type UI struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles

	json bool
}

// New creates a UI for the given writers and format flag ("terminal" or
// "json"). Styling is enabled only when the writer is a terminal.
func New(w, errW io.Writer, format string) *UI {
	jsonMode := format == "json"
	return &UI{
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(!jsonMode && isTerminal(w)),
		json:      jsonMode,
	}
}

// IsJSON reports whether output should be raw JSON.
func (u *UI) IsJSON() bool {
	return u.json
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
