package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit identifies one of the four French suits.
// The zero value is not a valid suit.
type Suit uint8

const (
	Spade Suit = iota + 1
	Heart
	Diamond
	Club
)

// Suits lists the four suits in canonical order.
var Suits = [4]Suit{Spade, Heart, Diamond, Club}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spade && s <= Club
}

// Color returns Red for hearts and diamonds, Black otherwise.
func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

// Symbol returns the unicode suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "spade"
	case Heart:
		return "heart"
	case Diamond:
		return "diamond"
	case Club:
		return "club"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Rank is a card value from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r is in the Ace..King range.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Color is the stacking color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is an immutable playing card. Two cards are the same card iff
// rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a Card, validating rank and suit.
func New(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("invalid card rank=%d suit=%d", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Color returns the color of the card's suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String renders the card as rank label plus suit symbol, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// CanAttach reports whether card may be placed directly on bottom:
// the colors differ and card is exactly one rank lower.
func CanAttach(bottom, card Card) bool {
	return bottom.Color() != card.Color() && bottom.Rank == card.Rank+1
}

// Join renders a list of cards separated by commas.
func Join(cs []Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
