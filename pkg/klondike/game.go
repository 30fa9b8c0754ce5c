package klondike

import (
	"fmt"

	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/google/uuid"
)

// Game is one dealt game: tableau, foundation and stock/waste created
// together and replaced wholesale by the next deal.
type Game struct {
	// ID identifies the deal in logs and events.
	ID string

	deck       *cards.Deck
	tableau    *Tableau
	foundation *Foundation
	stockWaste *StockWaste
	moves      int
}

// Deal shuffles a deck from src, lays out columns of 1..7 cards and puts
// the remaining cards on the stock.
func Deal(src cards.Source) (*Game, error) {
	deck := cards.NewDeck(src)
	if deck.Remaining() != cards.DeckSize {
		return nil, fmt.Errorf("deck source produced %d cards, want %d", deck.Remaining(), cards.DeckSize)
	}

	piles := make([][]cards.Card, Columns)
	for i := range Columns {
		pile, err := deck.Deal(i + 1)
		if err != nil {
			return nil, fmt.Errorf("dealing column %d: %w", i+1, err)
		}
		piles[i] = pile
	}
	tableau, err := NewTableau(piles)
	if err != nil {
		return nil, err
	}

	stock, err := deck.Deal(0)
	if err != nil {
		return nil, fmt.Errorf("dealing stock: %w", err)
	}

	return &Game{
		ID:         uuid.NewString(),
		deck:       deck,
		tableau:    tableau,
		foundation: NewFoundation(),
		stockWaste: NewStockWaste(stock),
	}, nil
}

// Tableau exposes the columns for rendering.
func (g *Game) Tableau() *Tableau { return g.tableau }

// Foundation exposes the suit stacks for rendering.
func (g *Game) Foundation() *Foundation { return g.foundation }

// StockWaste exposes the draw piles for rendering.
func (g *Game) StockWaste() *StockWaste { return g.stockWaste }

// Moves counts the successful operations applied to this game.
func (g *Game) Moves() int { return g.moves }

// IsWon reports whether every foundation stack is complete.
func (g *Game) IsWon() bool {
	return g.foundation.IsWon()
}

// StockToWaste draws one card, recycling the waste when the stock is empty.
func (g *Game) StockToWaste() error {
	if !g.stockWaste.StockToWaste() {
		return ErrNothingToDraw
	}
	g.moves++
	return nil
}

// WasteToFoundation moves the top waste card to its foundation stack.
func (g *Game) WasteToFoundation() error {
	card, ok := g.stockWaste.PeekWaste()
	if !ok {
		return fmt.Errorf("%w: waste is empty", ErrIllegalMove)
	}
	if !g.foundation.Add(card) {
		return fmt.Errorf("%w: %s cannot go to the foundation", ErrIllegalMove, card)
	}
	g.stockWaste.PopWaste()
	g.moves++
	return nil
}

// WasteToTableau moves the top waste card onto column col.
func (g *Game) WasteToTableau(col int) error {
	if !validColumn(col) {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, col+1)
	}
	card, ok := g.stockWaste.PeekWaste()
	if !ok {
		return fmt.Errorf("%w: waste is empty", ErrIllegalMove)
	}
	if !g.tableau.MoveWasteToColumn(g.stockWaste, col) {
		return fmt.Errorf("%w: %s cannot go to column %d", ErrIllegalMove, card, col+1)
	}
	g.moves++
	return nil
}

// TableauToFoundation moves the top card of column col to the foundation.
func (g *Game) TableauToFoundation(col int) error {
	if !validColumn(col) {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, col+1)
	}
	if !g.tableau.MoveToFoundation(col, g.foundation) {
		return fmt.Errorf("%w: column %d to foundation", ErrIllegalMove, col+1)
	}
	g.moves++
	return nil
}

// TableauToTableau moves the longest legal run from src onto dst.
func (g *Game) TableauToTableau(src, dst int) error {
	if !validColumn(src) {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, src+1)
	}
	if !validColumn(dst) {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, dst+1)
	}
	if !g.tableau.MoveColumnToColumn(src, dst) {
		return fmt.Errorf("%w: column %d to column %d", ErrIllegalMove, src+1, dst+1)
	}
	g.moves++
	return nil
}

// FoundationToTableau brings the top card of suit s back onto column col.
func (g *Game) FoundationToTableau(s cards.Suit, col int) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSuit, s)
	}
	if !validColumn(col) {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, col+1)
	}
	if !g.tableau.MoveFoundationToColumn(g.foundation, s, col) {
		return fmt.Errorf("%w: %s foundation to column %d", ErrIllegalMove, s.Symbol(), col+1)
	}
	g.moves++
	return nil
}

// Cards returns every card in play: undealt deck, tableau, foundation,
// stock and waste. A consistent game always holds the full deck once.
func (g *Game) Cards() []cards.Card {
	out := g.deck.Cards()
	for col := range Columns {
		out = append(out, g.tableau.Hidden(col)...)
		out = append(out, g.tableau.Visible(col)...)
	}
	for _, s := range cards.Suits {
		out = append(out, g.foundation.Stack(s)...)
	}
	out = append(out, g.stockWaste.Stock()...)
	out = append(out, g.stockWaste.Waste()...)
	return out
}
