package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/aretw0/solitaire/pkg/command"
	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/aretw0/solitaire/pkg/klondike"
)

// Engine is the game-state machine: it owns the current game, parses input
// lines and dispatches them to the matching game operation.
type Engine struct {
	source   cards.Source
	game     *klondike.Game
	interp   *command.Interpreter
	handlers map[command.Action]handlerFunc
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	// announced is set once the current game's win has been reported.
	announced bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine that deals every game from source.
// No game exists until Deal is called.
func NewEngine(source cards.Source, opts ...EngineOption) *Engine {
	e := &Engine{
		source: source,
		interp: command.NewInterpreter(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.handlers = e.dispatchTable()
	return e
}

// Game returns the game in progress, or nil before the first deal.
func (e *Engine) Game() *klondike.Game {
	return e.game
}

// History returns every non-blank command parsed so far.
func (e *Engine) History() *command.History {
	return e.interp.History()
}

// Deal replaces the current game with a fresh one.
func (e *Engine) Deal(ctx context.Context) error {
	g, err := klondike.Deal(e.source)
	if err != nil {
		return fmt.Errorf("dealing new game: %w", err)
	}
	e.game = g
	e.announced = false

	e.logger.Debug("game dealt",
		"game_id", g.ID,
		"stock", g.StockWaste().StockCount(),
		"stock_order", cards.Join(g.StockWaste().Stock()),
	)
	if e.hooks.OnDeal != nil {
		e.hooks.OnDeal(ctx, &domain.DealEvent{
			EventBase:  domain.NewEventBase(domain.EventDeal, g.ID),
			StockCount: g.StockWaste().StockCount(),
		})
	}
	return nil
}

// Execute parses line and applies it to the current game. Rejected and
// malformed commands are reported through the Outcome; the returned error
// is reserved for failures that leave the engine unusable.
func (e *Engine) Execute(ctx context.Context, line string) (domain.Outcome, error) {
	cmd := e.interp.Parse(line)
	if cmd.Action == command.ActionEmpty {
		return domain.Outcome{Action: cmd.Action.String(), Result: domain.ResultOK}, nil
	}

	if e.game == nil && cmd.Action.Mutates() && cmd.Action != command.ActionNewDeal {
		return domain.Outcome{}, domain.ErrNoGame
	}

	handler, ok := e.handlers[cmd.Action]
	if !ok {
		return domain.Outcome{}, fmt.Errorf("no handler for action %s", cmd.Action)
	}

	out, moveErr, err := handler(ctx, cmd)
	if err != nil {
		return domain.Outcome{}, err
	}
	out.Action = cmd.Action.String()

	logger := e.logger.With("action", out.Action, "input", cmd.String())
	if e.game != nil {
		logger = logger.With("game_id", e.game.ID)
	}
	switch {
	case moveErr != nil:
		logger.Debug("command rejected", "result", out.Result, "error", moveErr)
	default:
		logger.Debug("command applied", "result", out.Result)
	}

	if out.Result == domain.ResultOK && cmd.Action.Mutates() {
		e.checkWin(ctx, &out)
	}

	if e.hooks.OnCommand != nil {
		gameID := ""
		if e.game != nil {
			gameID = e.game.ID
		}
		e.hooks.OnCommand(ctx, &domain.CommandEvent{
			EventBase: domain.NewEventBase(domain.EventCommand, gameID),
			Action:    out.Action,
			Input:     cmd.String(),
			Result:    out.Result,
			Err:       moveErr,
		})
	}
	return out, nil
}

// checkWin announces a completed foundation once per game.
func (e *Engine) checkWin(ctx context.Context, out *domain.Outcome) {
	if e.announced || !e.game.IsWon() {
		return
	}
	e.announced = true
	out.Won = true
	out.System("Congratulations! You've won!")

	e.logger.Info("game won", "game_id", e.game.ID, "moves", e.game.Moves())
	if e.hooks.OnWin != nil {
		e.hooks.OnWin(ctx, &domain.WinEvent{
			EventBase: domain.NewEventBase(domain.EventWin, e.game.ID),
			Moves:     e.game.Moves(),
		})
	}
}
