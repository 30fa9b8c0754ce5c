package command

import (
	"fmt"
	"strings"
)

// Info describes one command form for help output.
type Info struct {
	Action      Action
	Usage       string
	Description string
}

// Infos lists the command forms in the order they are shown to players.
var Infos = []Info{
	{ActionNewDeal, "N", "New deal"},
	{ActionStockToWaste, "m", "Move a card from the stock to the waste"},
	{ActionWasteToFoundation, "w", "Move the waste card to its foundation"},
	{ActionWasteToTableau, "w C", "Move the waste card to tableau column C"},
	{ActionTableauToFoundation, "t C", "Move the top card of column C to its foundation"},
	{ActionTableauToTableau, "t C1 C2", "Move cards from column C1 onto column C2"},
	{ActionFoundationToTableau, "f S C", "Move the top card of foundation S (1♠ 2♥ 3♦ 4♣) to column C"},
	{ActionUndo, "u", "Undo the last move"},
	{ActionReplay, "r", "Replay the same game"},
	{ActionHint, "h", "Hint"},
	{ActionSolve, "s", "Solve"},
	{ActionHelp, "?", "Show this help"},
	{ActionQuit, "q", "Quit the game"},
}

// Help renders the command table as markdown.
func Help() string {
	var b strings.Builder
	b.WriteString("## Commands\n\n")
	b.WriteString("| Command | Action |\n")
	b.WriteString("|---|---|\n")
	for _, info := range Infos {
		fmt.Fprintf(&b, "| `%s` | %s |\n", info.Usage, info.Description)
	}
	b.WriteString("\nColumns C are numbered 1 to 7.\n")
	return b.String()
}

// Plain renders the command table as aligned text, one form per line.
func Plain() string {
	width := 0
	for _, info := range Infos {
		width = max(width, len(info.Usage))
	}
	var b strings.Builder
	for _, info := range Infos {
		fmt.Fprintf(&b, "%-*s  %s\n", width, info.Usage, info.Description)
	}
	return b.String()
}
