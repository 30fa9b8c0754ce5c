package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/solitaire"
	"github.com/aretw0/solitaire/pkg/command"
	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/aretw0/solitaire/pkg/klondike"
)

// DefaultWelcome greets the player before the first board.
const DefaultWelcome = "Welcome to Solitaire!"

// BoardRenderer draws a game as text.
type BoardRenderer func(*klondike.Game) string

// Runner handles the read-execute-print loop of the solitaire engine.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over
	// Stdin/Stdout is used.
	Handler IOHandler

	// Board draws the game after every change. If nil, no board is shown.
	Board BoardRenderer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Welcome is shown once, with the command list, before the first board.
	Welcome string
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Welcome: DefaultWelcome,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run plays engine until the player quits or the input ends. Both are a
// normal finish and return nil. Cancelling ctx returns ctx's error.
func (r *Runner) Run(ctx context.Context, engine *solitaire.Engine) error {
	handler := r.resolveHandler()
	if c, ok := handler.(io.Closer); ok {
		defer c.Close()
	}

	var intro []domain.Message
	if r.Welcome != "" {
		intro = append(intro,
			domain.Message{Kind: domain.MessageSystem, Text: r.Welcome},
			domain.Message{Kind: domain.MessageHelp, Text: command.Help()},
		)
	}
	intro = r.appendBoard(intro, engine)
	if err := handler.Output(ctx, intro); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	lines := 0
	for {
		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input exhausted", "lines", lines)
				bye := []domain.Message{{Kind: domain.MessageSystem, Text: "Game exited."}}
				if err := handler.Output(ctx, bye); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				return nil
			}
			if ctx.Err() != nil {
				r.Logger.Debug("runner input: context cancelled", "err", ctx.Err())
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}
		lines++

		out, err := engine.Execute(ctx, line)
		if err != nil {
			return fmt.Errorf("execute %q: %w", line, err)
		}

		msgs := out.Messages
		if out.ShowBoard {
			msgs = r.appendBoard(msgs, engine)
		}
		if err := handler.Output(ctx, msgs); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		if out.Quit {
			r.Logger.Debug("player quit", "lines", lines)
			return nil
		}
	}
}

func (r *Runner) appendBoard(msgs []domain.Message, engine *solitaire.Engine) []domain.Message {
	if r.Board == nil || engine.Game() == nil {
		return msgs
	}
	return append(msgs, domain.Message{Kind: domain.MessageBoard, Text: r.Board(engine.Game())})
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	return r.Handler
}
