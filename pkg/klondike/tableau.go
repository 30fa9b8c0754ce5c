package klondike

import (
	"fmt"
	"slices"

	"github.com/aretw0/solitaire/pkg/cards"
)

// Columns is the number of tableau columns.
const Columns = 7

type column struct {
	hidden  []cards.Card // face down, top last
	visible []cards.Card // face up, descending alternating run, top last
}

// Tableau is the seven playing columns. Column indexes are 0-based.
type Tableau struct {
	cols [Columns]column
}

// NewTableau lays out one dealt pile per column. The last card of each
// pile is turned face up; the rest stay hidden.
func NewTableau(piles [][]cards.Card) (*Tableau, error) {
	if len(piles) != Columns {
		return nil, fmt.Errorf("tableau needs %d piles, got %d", Columns, len(piles))
	}
	t := &Tableau{}
	for i, pile := range piles {
		if len(pile) == 0 {
			return nil, fmt.Errorf("tableau pile %d is empty", i)
		}
		last := len(pile) - 1
		t.cols[i].hidden = slices.Clone(pile[:last])
		t.cols[i].visible = []cards.Card{pile[last]}
	}
	return t, nil
}

func validColumn(col int) bool {
	return col >= 0 && col < Columns
}

// flip turns the top hidden card face up once the visible run is empty.
func (t *Tableau) flip(col int) {
	c := &t.cols[col]
	if len(c.visible) > 0 || len(c.hidden) == 0 {
		return
	}
	last := len(c.hidden) - 1
	c.visible = append(c.visible, c.hidden[last])
	c.hidden = c.hidden[:last]
}

// CanAdd reports whether card may be placed on column col: a King on an
// empty column, otherwise a card that attaches to the visible top.
func (t *Tableau) CanAdd(card cards.Card, col int) bool {
	if !validColumn(col) {
		return false
	}
	vis := t.cols[col].visible
	if len(vis) == 0 {
		return card.Rank == cards.King
	}
	return cards.CanAttach(vis[len(vis)-1], card)
}

// AddCard places a single card on column col.
func (t *Tableau) AddCard(card cards.Card, col int) bool {
	return t.AddRun([]cards.Card{card}, col)
}

// AddRun appends a whole run to column col if its first card is accepted.
// The run must already be a valid descending alternating chain.
func (t *Tableau) AddRun(run []cards.Card, col int) bool {
	if len(run) == 0 || !t.CanAdd(run[0], col) {
		return false
	}
	t.cols[col].visible = append(t.cols[col].visible, run...)
	return true
}

// MoveColumnToColumn moves the longest suffix of src's visible run that
// can land on dst. It returns false, changing nothing, if no suffix fits.
func (t *Tableau) MoveColumnToColumn(src, dst int) bool {
	if !validColumn(src) || !validColumn(dst) || src == dst {
		return false
	}
	vis := t.cols[src].visible
	for i := range vis {
		if t.AddRun(vis[i:], dst) {
			t.cols[src].visible = slices.Clone(vis[:i])
			t.flip(src)
			return true
		}
	}
	return false
}

// MoveToFoundation sends the top visible card of col to the foundation.
func (t *Tableau) MoveToFoundation(col int, f *Foundation) bool {
	top, ok := t.Top(col)
	if !ok || !f.Add(top) {
		return false
	}
	c := &t.cols[col]
	c.visible = c.visible[:len(c.visible)-1]
	t.flip(col)
	return true
}

// MoveWasteToColumn places the top waste card on col.
func (t *Tableau) MoveWasteToColumn(sw *StockWaste, col int) bool {
	card, ok := sw.PeekWaste()
	if !ok || !t.AddCard(card, col) {
		return false
	}
	sw.PopWaste()
	return true
}

// MoveFoundationToColumn brings the top card of suit s back onto col.
func (t *Tableau) MoveFoundationToColumn(f *Foundation, s cards.Suit, col int) bool {
	card, ok := f.Top(s)
	if !ok || !t.AddCard(card, col) {
		return false
	}
	f.Pop(s)
	return true
}

// Top returns the top visible card of col.
func (t *Tableau) Top(col int) (cards.Card, bool) {
	if !validColumn(col) {
		return cards.Card{}, false
	}
	vis := t.cols[col].visible
	if len(vis) == 0 {
		return cards.Card{}, false
	}
	return vis[len(vis)-1], true
}

// Hidden returns a copy of the face-down cards of col, top last.
func (t *Tableau) Hidden(col int) []cards.Card {
	if !validColumn(col) {
		return nil
	}
	return slices.Clone(t.cols[col].hidden)
}

// Visible returns a copy of the face-up run of col, top last.
func (t *Tableau) Visible(col int) []cards.Card {
	if !validColumn(col) {
		return nil
	}
	return slices.Clone(t.cols[col].visible)
}

// Height is the total number of cards in col.
func (t *Tableau) Height(col int) int {
	if !validColumn(col) {
		return 0
	}
	return len(t.cols[col].hidden) + len(t.cols[col].visible)
}

// PileLength is the height of the tallest column.
func (t *Tableau) PileLength() int {
	longest := 0
	for col := range Columns {
		longest = max(longest, t.Height(col))
	}
	return longest
}
