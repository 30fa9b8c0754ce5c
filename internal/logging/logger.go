// Package logging builds the slog loggers shared by the binary and the engine.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text logger writing to w. The "error" key is renamed
// "err" so rejected moves and runtime failures log uniformly.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// ForSession returns the logger of a play session: debug output on
// Stderr, keeping Stdout for the board, or nothing at all.
func ForSession(debug bool) *slog.Logger {
	if debug {
		return New(os.Stderr, slog.LevelDebug)
	}
	return NewNop()
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
