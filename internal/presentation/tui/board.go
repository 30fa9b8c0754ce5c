package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/aretw0/solitaire/pkg/klondike"
	"github.com/muesli/termenv"
)

const (
	cellWidth = 6
	rule      = "-------------------------------------------------------------------"
)

// Board draws a game as a fixed-width table.
type Board struct {
	// Profile decides which escape sequences are emitted. termenv.Ascii
	// gives plain text.
	Profile termenv.Profile
	// ShowHidden prints face-down cards, underlined, instead of "x".
	ShowHidden bool
}

// Render returns the board followed by a newline.
func (b Board) Render(g *klondike.Game) string {
	var sb strings.Builder
	sb.WriteString(rule + "\n")

	sw := g.StockWaste()
	f := g.Foundation()

	sb.WriteString(pad("Waste", 9) + pad("Stock", 15) + "Foundation\n")
	if top, ok := sw.PeekWaste(); ok {
		sb.WriteString(b.cell(top, false, 9))
	} else {
		sb.WriteString(pad("--", 9))
	}
	stock := sw.StockLabel()
	if stock == "" {
		stock = "--"
	}
	sb.WriteString(pad(stock, 15))
	for i, s := range cards.Suits {
		width := cellWidth
		if i == len(cards.Suits)-1 {
			width = 0
		}
		if top, ok := f.Top(s); ok {
			sb.WriteString(b.cell(top, false, width))
		} else {
			sb.WriteString(pad(s.Symbol(), width))
		}
	}
	sb.WriteString("\n\nTableau\n")

	t := g.Tableau()
	var header strings.Builder
	for col := range klondike.Columns {
		header.WriteString(pad(string(rune('1'+col)), cellWidth))
	}
	sb.WriteString(strings.TrimRight(header.String(), " ") + "\n")

	for depth := range t.PileLength() {
		var row strings.Builder
		for col := range klondike.Columns {
			hidden, visible := t.Hidden(col), t.Visible(col)
			switch {
			case depth < len(hidden) && b.ShowHidden:
				row.WriteString(b.cell(hidden[depth], true, cellWidth))
			case depth < len(hidden):
				row.WriteString(pad("x", cellWidth))
			case depth < len(hidden)+len(visible):
				row.WriteString(b.cell(visible[depth-len(hidden)], false, cellWidth))
			default:
				row.WriteString(pad("", cellWidth))
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " ") + "\n")
	}

	sb.WriteString(rule + "\n")
	return sb.String()
}

// cell styles a card label and pads it to width. Padding is added after
// styling so escape sequences do not count toward the width.
func (b Board) cell(c cards.Card, hidden bool, width int) string {
	label := c.String()
	color := "#60a5fa"
	if c.Color() == cards.Red {
		color = "#ef4444"
	}
	style := b.Profile.String(label).Foreground(b.Profile.Color(color))
	if hidden {
		style = style.Underline()
	}
	return style.String() + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(label)))
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
}
