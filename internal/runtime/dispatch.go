package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/solitaire/pkg/command"
	"github.com/aretw0/solitaire/pkg/domain"
)

// handlerFunc applies one command. moveErr is a rejected move, already
// described in the outcome; err is fatal.
type handlerFunc func(ctx context.Context, cmd command.Command) (out domain.Outcome, moveErr error, err error)

func (e *Engine) dispatchTable() map[command.Action]handlerFunc {
	return map[command.Action]handlerFunc{
		command.ActionNewDeal:      e.newDeal,
		command.ActionStockToWaste: e.stockToWaste,
		command.ActionWasteToFoundation: e.move(func(command.Command) (string, error) {
			return "Card could not be moved from the waste to the foundation.", e.game.WasteToFoundation()
		}),
		command.ActionWasteToTableau: e.move(func(cmd command.Command) (string, error) {
			col := cmd.Column(0)
			return fmt.Sprintf("Card could not be moved from the waste to column %d.", col+1),
				e.game.WasteToTableau(col)
		}),
		command.ActionTableauToFoundation: e.move(func(cmd command.Command) (string, error) {
			col := cmd.Column(0)
			return fmt.Sprintf("Card could not be moved from column %d to the foundation.", col+1),
				e.game.TableauToFoundation(col)
		}),
		command.ActionTableauToTableau: e.move(func(cmd command.Command) (string, error) {
			src, dst := cmd.Column(0), cmd.Column(1)
			return fmt.Sprintf("Cards could not be moved from column %d to column %d.", src+1, dst+1),
				e.game.TableauToTableau(src, dst)
		}),
		command.ActionFoundationToTableau: e.move(func(cmd command.Command) (string, error) {
			suit, col := cmd.Suit(0), cmd.Column(1)
			return fmt.Sprintf("Card could not be moved from the %s foundation to column %d.", suit.Symbol(), col+1),
				e.game.FoundationToTableau(suit, col)
		}),
		command.ActionUndo:    unavailable("Undo"),
		command.ActionReplay:  unavailable("Replay"),
		command.ActionHint:    unavailable("Hint"),
		command.ActionSolve:   unavailable("Solve"),
		command.ActionHelp:    help,
		command.ActionQuit:    quit,
		command.ActionInvalid: invalid,
	}
}

func (e *Engine) newDeal(ctx context.Context, _ command.Command) (domain.Outcome, error, error) {
	if err := e.Deal(ctx); err != nil {
		return domain.Outcome{}, nil, err
	}
	out := domain.Outcome{Result: domain.ResultOK, ShowBoard: true}
	out.Info("New deal.")
	return out, nil, nil
}

func (e *Engine) stockToWaste(_ context.Context, _ command.Command) (domain.Outcome, error, error) {
	if err := e.game.StockToWaste(); err != nil {
		out := domain.Outcome{Result: domain.ResultRejected}
		out.Error("No cards left in the stock or waste.")
		return out, err, nil
	}
	return domain.Outcome{Result: domain.ResultOK, ShowBoard: true}, nil, nil
}

// move adapts a game operation to a handler. apply returns the message to
// show if the operation fails, and the operation's error.
func (e *Engine) move(apply func(command.Command) (string, error)) handlerFunc {
	return func(_ context.Context, cmd command.Command) (domain.Outcome, error, error) {
		failure, err := apply(cmd)
		if err != nil {
			out := domain.Outcome{Result: domain.ResultRejected}
			out.Error(failure)
			return out, err, nil
		}
		return domain.Outcome{Result: domain.ResultOK, ShowBoard: true}, nil, nil
	}
}

func unavailable(feature string) handlerFunc {
	return func(context.Context, command.Command) (domain.Outcome, error, error) {
		out := domain.Outcome{Result: domain.ResultUnavailable}
		out.Info(feature + " Not Available.")
		return out, nil, nil
	}
}

func help(context.Context, command.Command) (domain.Outcome, error, error) {
	out := domain.Outcome{Result: domain.ResultOK}
	out.Messages = append(out.Messages, domain.Message{Kind: domain.MessageHelp, Text: command.Help()})
	return out, nil, nil
}

func quit(context.Context, command.Command) (domain.Outcome, error, error) {
	out := domain.Outcome{Result: domain.ResultOK, Quit: true}
	out.System("Game exited.")
	return out, nil, nil
}

func invalid(_ context.Context, cmd command.Command) (domain.Outcome, error, error) {
	out := domain.Outcome{Result: domain.ResultInvalid}
	out.Error(fmt.Sprintf("Invalid command %q: %v (type ? for help)", cmd.String(), cmd.Err))
	return out, cmd.Err, nil
}
