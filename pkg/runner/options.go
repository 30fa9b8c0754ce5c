package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithBoardRenderer configures how the board is drawn after each change.
func WithBoardRenderer(board BoardRenderer) Option {
	return func(r *Runner) {
		r.Board = board
	}
}

// WithWelcome sets the greeting shown before the first board. An empty
// greeting skips the greeting and the help listing.
func WithWelcome(welcome string) Option {
	return func(r *Runner) {
		r.Welcome = welcome
	}
}
