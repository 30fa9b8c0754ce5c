package solitaire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/solitaire/internal/runtime"
	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/aretw0/solitaire/pkg/command"
	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/aretw0/solitaire/pkg/klondike"
)

// Version is the release of the engine and CLI.
var Version = "0.1.0"

// Engine is the high-level entry point for the solitaire library.
// It wraps the internal runtime and owns the game in progress.
type Engine struct {
	runtime *runtime.Engine
	source  cards.Source
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSeed makes every deal reproducible: the same seed yields the same
// sequence of games.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.source = cards.Shuffled(cards.NewRand(seed))
	}
}

// WithDeckSource replaces the shuffler entirely, e.g. with cards.Ordered
// for a scripted deal.
func WithDeckSource(src cards.Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// New creates an engine and deals the first game.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.source == nil {
		eng.source = cards.Shuffled(cards.NewRand(rand.Uint64()))
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(eng.source,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)

	if err := eng.runtime.Deal(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to deal first game: %w", err)
	}
	return eng, nil
}

// NewDeal abandons the current game and deals a fresh one.
func (e *Engine) NewDeal(ctx context.Context) error {
	return e.runtime.Deal(ctx)
}

// Execute applies one input line to the game in progress.
//
// Illegal moves and malformed lines are not errors: they come back as an
// Outcome with Result rejected or invalid and a message to show. An error
// means the engine could not continue.
func (e *Engine) Execute(ctx context.Context, line string) (domain.Outcome, error) {
	return e.runtime.Execute(ctx, line)
}

// Game returns the game in progress for rendering and inspection.
func (e *Engine) Game() *klondike.Game {
	return e.runtime.Game()
}

// History returns every non-blank command entered so far, oldest first.
func (e *Engine) History() []command.Command {
	return e.runtime.History().Commands()
}
