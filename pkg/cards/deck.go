package cards

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// ErrExhaustedDeck is returned when a deal asks for more cards than remain.
var ErrExhaustedDeck = errors.New("not enough cards remaining in deck")

// Full returns the 52 cards in canonical order: ranks Ace..King, and for
// each rank the suits in Suits order.
func Full() []Card {
	out := make([]Card, 0, DeckSize)
	for r := Ace; r <= King; r++ {
		for _, s := range Suits {
			out = append(out, Card{Rank: r, Suit: s})
		}
	}
	return out
}

// Source produces the order of a fresh deck. The last element is dealt first.
type Source func() []Card

// Shuffled returns a Source yielding a uniformly random permutation of the
// full deck on every call, drawn from rng.
func Shuffled(rng *rand.Rand) Source {
	return func() []Card {
		d := Full()
		rng.Shuffle(len(d), func(i, j int) {
			d[i], d[j] = d[j], d[i]
		})
		return d
	}
}

// Ordered returns a Source yielding a copy of cs on every call.
func Ordered(cs []Card) Source {
	return func() []Card {
		return slices.Clone(cs)
	}
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Deck is an ordered card sequence consumed from its tail.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck from the order produced by src.
func NewDeck(src Source) *Deck {
	return &Deck{cards: src()}
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Deal pops n cards from the tail; the first returned card is the previous
// tail. n == 0 deals everything left. Asking for more than remains fails
// with ErrExhaustedDeck and leaves the deck untouched.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n == 0 {
		n = len(d.cards)
	}
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrExhaustedDeck, n, len(d.cards))
	}
	out := make([]Card, 0, n)
	for range n {
		last := len(d.cards) - 1
		out = append(out, d.cards[last])
		d.cards = d.cards[:last]
	}
	return out, nil
}
