package runner

import (
	"context"

	"github.com/aretw0/solitaire/pkg/domain"
)

// IOHandler defines the strategy for interacting with the player.
// This allows switching between Text (terminal, script) and JSON (structured) modes.
type IOHandler interface {
	// Output presents messages to the player, in order.
	Output(ctx context.Context, msgs []domain.Message) error

	// Input reads the next command line. It returns io.EOF when the input
	// is exhausted.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer is a function that transforms help markdown before it
// is written. This allows terminal rendering without coupling the core package.
type ContentRenderer func(string) (string, error)
