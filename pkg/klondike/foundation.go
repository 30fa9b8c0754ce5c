package klondike

import (
	"slices"

	"github.com/aretw0/solitaire/pkg/cards"
)

// Foundation holds the four suit stacks built up from Ace to King.
type Foundation struct {
	stacks map[cards.Suit][]cards.Card
}

// NewFoundation returns four empty stacks.
func NewFoundation() *Foundation {
	f := &Foundation{stacks: make(map[cards.Suit][]cards.Card, len(cards.Suits))}
	for _, s := range cards.Suits {
		f.stacks[s] = nil
	}
	return f
}

// CanAdd reports whether c is the next card for its suit stack.
func (f *Foundation) CanAdd(c cards.Card) bool {
	if !c.Suit.Valid() {
		return false
	}
	stack := f.stacks[c.Suit]
	if len(stack) == 0 {
		return c.Rank == cards.Ace
	}
	return c.Rank == stack[len(stack)-1].Rank+1
}

// Add pushes c onto its suit stack if the sequence allows it.
// A rejected card leaves the foundation unchanged.
func (f *Foundation) Add(c cards.Card) bool {
	if !f.CanAdd(c) {
		return false
	}
	f.stacks[c.Suit] = append(f.stacks[c.Suit], c)
	return true
}

// Top returns the highest card placed for suit s.
func (f *Foundation) Top(s cards.Suit) (cards.Card, bool) {
	stack := f.stacks[s]
	if len(stack) == 0 {
		return cards.Card{}, false
	}
	return stack[len(stack)-1], true
}

// Pop removes the top card of suit s.
func (f *Foundation) Pop(s cards.Suit) (cards.Card, bool) {
	c, ok := f.Top(s)
	if ok {
		f.stacks[s] = f.stacks[s][:len(f.stacks[s])-1]
	}
	return c, ok
}

// TopLabel is the top card label, or the bare suit symbol when empty.
func (f *Foundation) TopLabel(s cards.Suit) string {
	if c, ok := f.Top(s); ok {
		return c.String()
	}
	return s.Symbol()
}

// Len returns the number of cards in suit s.
func (f *Foundation) Len(s cards.Suit) int {
	return len(f.stacks[s])
}

// Stack returns a copy of suit s, Ace first.
func (f *Foundation) Stack(s cards.Suit) []cards.Card {
	return slices.Clone(f.stacks[s])
}

// IsWon reports whether all four suits are complete.
func (f *Foundation) IsWon() bool {
	for _, s := range cards.Suits {
		stack := f.stacks[s]
		if len(stack) != int(cards.King) || stack[len(stack)-1].Rank != cards.King {
			return false
		}
	}
	return true
}
