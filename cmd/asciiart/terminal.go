package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"go.jacobcolvin.com/asciiart/art"
)

// terminalWidth returns the column count of w if it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd()) //nolint:gosec // File descriptors fit in int.
	if !term.IsTerminal(fd) {
		return 0, false
	}

	cols, _, err := term.GetSize(fd)
	if err != nil {
		slog.Debug("get terminal size", slog.Any("error", err))

		return 0, false
	}

	return cols, true
}

// warnIfWide logs a warning when rows of a would wrap in the terminal behind
// w. Output is never altered.
func warnIfWide(a *art.Art, w io.Writer) {
	cols, ok := terminalWidth(w)
	if !ok || a.Width <= cols {
		return
	}

	slog.Warn("art is wider than the terminal and will wrap",
		slog.Int("width", a.Width),
		slog.Int("columns", cols),
	)
}
