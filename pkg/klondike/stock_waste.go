package klondike

import (
	"slices"
	"strconv"

	"github.com/aretw0/solitaire/pkg/cards"
)

// StockWaste keeps the face-down stock and the face-up waste.
// Both are stacks: the last element is the top.
type StockWaste struct {
	stock []cards.Card
	waste []cards.Card
}

// NewStockWaste takes the cards left after the tableau deal as the stock.
func NewStockWaste(stock []cards.Card) *StockWaste {
	return &StockWaste{stock: slices.Clone(stock)}
}

// StockToWaste turns the top stock card onto the waste. When the stock is
// empty the waste is turned over to become the stock first. Returns false
// only when both piles are empty.
func (sw *StockWaste) StockToWaste() bool {
	if len(sw.stock) == 0 && len(sw.waste) == 0 {
		return false
	}
	if len(sw.stock) == 0 {
		slices.Reverse(sw.waste)
		sw.stock = sw.waste
		sw.waste = nil
	}
	last := len(sw.stock) - 1
	sw.waste = append(sw.waste, sw.stock[last])
	sw.stock = sw.stock[:last]
	return true
}

// PeekWaste returns the top waste card without removing it.
func (sw *StockWaste) PeekWaste() (cards.Card, bool) {
	if len(sw.waste) == 0 {
		return cards.Card{}, false
	}
	return sw.waste[len(sw.waste)-1], true
}

// PopWaste removes and returns the top waste card.
func (sw *StockWaste) PopWaste() (cards.Card, bool) {
	c, ok := sw.PeekWaste()
	if ok {
		sw.waste = sw.waste[:len(sw.waste)-1]
	}
	return c, ok
}

// StockCount is the number of cards left in the stock.
func (sw *StockWaste) StockCount() int {
	return len(sw.stock)
}

// WasteCount is the number of cards on the waste.
func (sw *StockWaste) WasteCount() int {
	return len(sw.waste)
}

// StockLabel describes the stock for display, or "" when it is empty.
func (sw *StockWaste) StockLabel() string {
	if len(sw.stock) == 0 {
		return ""
	}
	return strconv.Itoa(len(sw.stock)) + " card(s)"
}

// Stock returns a copy of the stock, top last.
func (sw *StockWaste) Stock() []cards.Card {
	return slices.Clone(sw.stock)
}

// Waste returns a copy of the waste, top last.
func (sw *StockWaste) Waste() []cards.Card {
	return slices.Clone(sw.waste)
}
