package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/aretw0/solitaire/pkg/klondike"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrNotNumber      = errors.New("argument is not a number")
	ErrOutOfRange     = errors.New("argument out of range")
)

// Command is one parsed input line.
type Command struct {
	Action Action
	// Args are 0-based: tableau columns 0..6, foundation suits 0..3
	// (indexes into cards.Suits).
	Args []int
	// Tokens is the whitespace-split input line.
	Tokens []string
	// Err explains why the line was rejected. Only set for ActionInvalid.
	Err error
}

// String returns the command as the player typed it, normalized to single
// spaces.
func (c Command) String() string {
	return strings.Join(c.Tokens, " ")
}

// Column returns the i-th argument as a tableau column.
func (c Command) Column(i int) int {
	return c.Args[i]
}

// Suit returns the i-th argument as a foundation suit.
func (c Command) Suit(i int) cards.Suit {
	return cards.Suits[c.Args[i]]
}

type argKind int

const (
	argColumn argKind = iota
	argSuit
)

func (k argKind) limit() int {
	if k == argSuit {
		return len(cards.Suits)
	}
	return klondike.Columns
}

func (k argKind) String() string {
	if k == argSuit {
		return "suit"
	}
	return "column"
}

// form is one accepted arity of a key.
type form struct {
	action Action
	args   []argKind
}

var grammar = map[string][]form{
	"N": {{action: ActionNewDeal}},
	"m": {{action: ActionStockToWaste}},
	"w": {
		{action: ActionWasteToFoundation},
		{action: ActionWasteToTableau, args: []argKind{argColumn}},
	},
	"t": {
		{action: ActionTableauToFoundation, args: []argKind{argColumn}},
		{action: ActionTableauToTableau, args: []argKind{argColumn, argColumn}},
	},
	"f": {{action: ActionFoundationToTableau, args: []argKind{argSuit, argColumn}}},
	"u": {{action: ActionUndo}},
	"r": {{action: ActionReplay}},
	"h": {{action: ActionHint}},
	"s": {{action: ActionSolve}},
	"?": {{action: ActionHelp}},
	"q": {{action: ActionQuit}},
}

// Parse maps one input line to a Command. Blank lines give ActionEmpty;
// anything malformed gives ActionInvalid with Err set. Keys are
// case-sensitive and arguments are 1-based decimal numbers.
func Parse(line string) Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Action: ActionEmpty}
	}

	key, raw := tokens[0], tokens[1:]
	forms, ok := grammar[key]
	if !ok {
		return invalid(tokens, fmt.Errorf("%w: %q", ErrUnknownCommand, key))
	}

	var match *form
	for i := range forms {
		if len(forms[i].args) == len(raw) {
			match = &forms[i]
			break
		}
	}
	if match == nil {
		return invalid(tokens, fmt.Errorf("%w for %q: got %d", ErrArity, key, len(raw)))
	}

	args := make([]int, len(raw))
	for i, tok := range raw {
		n, err := parseArg(tok, match.args[i])
		if err != nil {
			return invalid(tokens, err)
		}
		args[i] = n
	}

	return Command{Action: match.action, Args: args, Tokens: tokens}
}

func invalid(tokens []string, err error) Command {
	return Command{Action: ActionInvalid, Tokens: tokens, Err: err}
}

// parseArg converts a 1-based argument to a 0-based index.
func parseArg(tok string, kind argKind) (int, error) {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotNumber, tok)
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	if n < 1 || n > kind.limit() {
		return 0, fmt.Errorf("%w: %s %d not in 1..%d", ErrOutOfRange, kind, n, kind.limit())
	}
	return n - 1, nil
}
