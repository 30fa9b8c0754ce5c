package klondike

import (
	"testing"

	"github.com/aretw0/solitaire/pkg/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s}
}

// tableauWith builds a tableau whose columns hold the given hidden and
// visible runs; unspecified columns are empty.
func tableauWith(cols map[int][2][]cards.Card) *Tableau {
	t := &Tableau{}
	for i, c := range cols {
		t.cols[i].hidden = c[0]
		t.cols[i].visible = c[1]
	}
	return t
}

func TestStockWaste_Draw(t *testing.T) {
	a, b, c := card(1, cards.Spade), card(2, cards.Spade), card(3, cards.Spade)
	sw := NewStockWaste([]cards.Card{a, b, c})

	require.True(t, sw.StockToWaste())
	top, ok := sw.PeekWaste()
	require.True(t, ok)
	assert.Equal(t, c, top)
	assert.Equal(t, 2, sw.StockCount())
	assert.Equal(t, "2 card(s)", sw.StockLabel())
}

func TestStockWaste_Recycle(t *testing.T) {
	c1, c2, c3 := card(4, cards.Heart), card(9, cards.Club), card(12, cards.Diamond)
	sw := &StockWaste{waste: []cards.Card{c1, c2, c3}}

	require.True(t, sw.StockToWaste())

	assert.Equal(t, []cards.Card{c1}, sw.Waste(), "the first card drawn comes round first")
	assert.Equal(t, []cards.Card{c3, c2}, sw.Stock())
	assert.Equal(t, "", (&StockWaste{}).StockLabel())
}

func TestStockWaste_BothEmpty(t *testing.T) {
	sw := NewStockWaste(nil)
	assert.False(t, sw.StockToWaste())
	_, ok := sw.PeekWaste()
	assert.False(t, ok)
	_, ok = sw.PopWaste()
	assert.False(t, ok)
}

func TestStockWaste_FullCycleKeepsCards(t *testing.T) {
	deck := cards.Full()[:10]
	sw := NewStockWaste(deck)
	for range 25 {
		require.True(t, sw.StockToWaste())
		assert.Equal(t, 10, sw.StockCount()+sw.WasteCount())
	}
	all := append(sw.Stock(), sw.Waste()...)
	assert.ElementsMatch(t, deck, all)
}

func TestFoundation_Add(t *testing.T) {
	tests := []struct {
		name  string
		stack []cards.Card
		add   cards.Card
		want  bool
	}{
		{"Ace on empty", nil, card(cards.Ace, cards.Heart), true},
		{"Two on empty", nil, card(2, cards.Heart), false},
		{"Two on Ace", []cards.Card{card(1, cards.Heart)}, card(2, cards.Heart), true},
		{"Three on Ace", []cards.Card{card(1, cards.Heart)}, card(3, cards.Heart), false},
		{"Ace on Ace", []cards.Card{card(1, cards.Heart)}, card(1, cards.Heart), false},
		{"Other suit stack ignored", []cards.Card{card(1, cards.Heart)}, card(2, cards.Spade), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFoundation()
			for _, c := range tt.stack {
				require.True(t, f.Add(c))
			}
			before := f.Stack(tt.add.Suit)

			assert.Equal(t, tt.want, f.Add(tt.add))
			if !tt.want {
				assert.Equal(t, before, f.Stack(tt.add.Suit), "rejection must not mutate")
			}
		})
	}
}

// Foundation accepts a card iff (empty and Ace) or (rank == top+1).
func TestFoundation_Monotonic(t *testing.T) {
	f := NewFoundation()
	rng := cards.NewRand(3)
	for range 2000 {
		c := card(cards.Rank(rng.IntN(13)+1), cards.Suits[rng.IntN(4)])
		top, ok := f.Top(c.Suit)
		want := (!ok && c.Rank == cards.Ace) || (ok && c.Rank == top.Rank+1)
		before := f.Len(c.Suit)

		got := f.Add(c)

		require.Equal(t, want, got, "adding %s on %v", c, top)
		if got {
			assert.Equal(t, before+1, f.Len(c.Suit))
		} else {
			assert.Equal(t, before, f.Len(c.Suit))
		}
	}
}

func TestFoundation_TopLabelAndPop(t *testing.T) {
	f := NewFoundation()
	assert.Equal(t, "♣", f.TopLabel(cards.Club))

	require.True(t, f.Add(card(cards.Ace, cards.Club)))
	assert.Equal(t, "A♣", f.TopLabel(cards.Club))

	c, ok := f.Pop(cards.Club)
	assert.True(t, ok)
	assert.Equal(t, card(cards.Ace, cards.Club), c)
	assert.Equal(t, 0, f.Len(cards.Club))
}

func TestFoundation_IsWon(t *testing.T) {
	f := NewFoundation()
	assert.False(t, f.IsWon())

	for _, s := range cards.Suits {
		for r := cards.Ace; r <= cards.King; r++ {
			require.True(t, f.Add(card(r, s)))
		}
	}
	assert.True(t, f.IsWon())

	_, _ = f.Pop(cards.Diamond)
	assert.False(t, f.IsWon(), "twelve diamonds is not a win")
}

func TestNewTableau(t *testing.T) {
	d := cards.NewDeck(cards.Shuffled(cards.NewRand(11)))
	piles := make([][]cards.Card, Columns)
	for i := range piles {
		p, err := d.Deal(i + 1)
		require.NoError(t, err)
		piles[i] = p
	}

	tab, err := NewTableau(piles)
	require.NoError(t, err)
	for col := range Columns {
		assert.Len(t, tab.Hidden(col), col)
		require.Len(t, tab.Visible(col), 1)
		assert.Equal(t, piles[col][col], tab.Visible(col)[0], "last dealt card is face up")
		assert.Equal(t, col+1, tab.Height(col))
	}
	assert.Equal(t, 7, tab.PileLength())

	_, err = NewTableau(piles[:6])
	assert.Error(t, err)
}

func TestTableau_AddCard(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(6, cards.Diamond)}},
	})

	assert.False(t, tab.AddCard(card(5, cards.Heart), 0), "same color")
	assert.False(t, tab.AddCard(card(4, cards.Spade), 0), "two ranks apart")
	assert.True(t, tab.AddCard(card(5, cards.Spade), 0))
	assert.Equal(t, []cards.Card{card(6, cards.Diamond), card(5, cards.Spade)}, tab.Visible(0))

	assert.False(t, tab.AddCard(card(cards.Queen, cards.Heart), 1), "empty column takes Kings only")
	assert.True(t, tab.AddCard(card(cards.King, cards.Heart), 1))

	assert.False(t, tab.AddCard(card(cards.King, cards.Club), 9), "out of range column")
}

func TestTableau_AddRunIsAtomic(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(9, cards.Club)}},
	})
	run := []cards.Card{card(8, cards.Spade), card(7, cards.Heart)}

	assert.False(t, tab.AddRun(run, 0))
	assert.Equal(t, []cards.Card{card(9, cards.Club)}, tab.Visible(0))
	assert.False(t, tab.AddRun(nil, 0))
}

func TestTableau_MoveLongestRun(t *testing.T) {
	hiddenCard := card(2, cards.Club)
	tab := tableauWith(map[int][2][]cards.Card{
		0: {[]cards.Card{hiddenCard}, []cards.Card{card(8, cards.Spade), card(7, cards.Heart), card(6, cards.Spade)}},
		1: {nil, []cards.Card{card(9, cards.Heart)}},
	})

	require.True(t, tab.MoveColumnToColumn(0, 1))

	assert.Equal(t, []cards.Card{
		card(9, cards.Heart), card(8, cards.Spade), card(7, cards.Heart), card(6, cards.Spade),
	}, tab.Visible(1))
	assert.Equal(t, []cards.Card{hiddenCard}, tab.Visible(0), "emptied column flips its hidden card")
	assert.Empty(t, tab.Hidden(0))
}

func TestTableau_MoveFallsBackToShorterSuffix(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(8, cards.Spade), card(7, cards.Heart), card(6, cards.Spade)}},
		1: {nil, []cards.Card{card(7, cards.Diamond)}},
	})

	require.True(t, tab.MoveColumnToColumn(0, 1))
	assert.Equal(t, []cards.Card{card(8, cards.Spade), card(7, cards.Heart)}, tab.Visible(0))
	assert.Equal(t, []cards.Card{card(7, cards.Diamond), card(6, cards.Spade)}, tab.Visible(1))
}

func TestTableau_MoveKingRunToEmptyColumn(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {[]cards.Card{card(3, cards.Heart)}, []cards.Card{card(cards.King, cards.Spade), card(cards.Queen, cards.Heart)}},
	})

	require.True(t, tab.MoveColumnToColumn(0, 4))
	assert.Equal(t, []cards.Card{card(cards.King, cards.Spade), card(cards.Queen, cards.Heart)}, tab.Visible(4))
	assert.Equal(t, []cards.Card{card(3, cards.Heart)}, tab.Visible(0))
}

func TestTableau_MoveRejectedLeavesState(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(5, cards.Spade)}},
		1: {nil, []cards.Card{card(6, cards.Spade)}},
	})

	assert.False(t, tab.MoveColumnToColumn(0, 1))
	assert.Equal(t, []cards.Card{card(5, cards.Spade)}, tab.Visible(0))
	assert.Equal(t, []cards.Card{card(6, cards.Spade)}, tab.Visible(1))

	assert.False(t, tab.MoveColumnToColumn(0, 0), "same column")
	assert.False(t, tab.MoveColumnToColumn(2, 1), "empty source")
}

func TestTableau_MoveToFoundation(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {[]cards.Card{card(9, cards.Club)}, []cards.Card{card(cards.Ace, cards.Heart)}},
		1: {nil, []cards.Card{card(3, cards.Heart)}},
	})
	f := NewFoundation()

	assert.False(t, tab.MoveToFoundation(1, f))
	assert.Equal(t, []cards.Card{card(3, cards.Heart)}, tab.Visible(1))

	require.True(t, tab.MoveToFoundation(0, f))
	assert.Equal(t, 1, f.Len(cards.Heart))
	assert.Equal(t, []cards.Card{card(9, cards.Club)}, tab.Visible(0))

	assert.False(t, tab.MoveToFoundation(5, f), "empty column")
}

func TestTableau_MoveWasteToColumn(t *testing.T) {
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(10, cards.Spade)}},
	})
	sw := &StockWaste{waste: []cards.Card{card(9, cards.Club)}}

	assert.False(t, tab.MoveWasteToColumn(sw, 0))
	assert.Equal(t, 1, sw.WasteCount(), "rejected card stays on the waste")

	sw.waste = append(sw.waste, card(9, cards.Diamond))
	require.True(t, tab.MoveWasteToColumn(sw, 0))
	assert.Equal(t, 1, sw.WasteCount())
	top, _ := tab.Top(0)
	assert.Equal(t, card(9, cards.Diamond), top)

	assert.False(t, tab.MoveWasteToColumn(&StockWaste{}, 0), "empty waste")
}

func TestTableau_MoveFoundationToColumn(t *testing.T) {
	f := NewFoundation()
	require.True(t, f.Add(card(cards.Ace, cards.Spade)))
	require.True(t, f.Add(card(2, cards.Spade)))
	tab := tableauWith(map[int][2][]cards.Card{
		0: {nil, []cards.Card{card(3, cards.Heart)}},
		1: {nil, []cards.Card{card(3, cards.Club)}},
	})

	assert.False(t, tab.MoveFoundationToColumn(f, cards.Spade, 1))
	assert.Equal(t, 2, f.Len(cards.Spade))

	require.True(t, tab.MoveFoundationToColumn(f, cards.Spade, 0))
	assert.Equal(t, 1, f.Len(cards.Spade))
	assert.False(t, tab.MoveFoundationToColumn(f, cards.Heart, 0), "empty suit stack")
}
