/*
Package cards models a standard 52-card French deck.

A Card is a plain value (rank and suit). A Deck is consumed from its tail, so
the last card produced by its Source is the first one dealt. Sources decouple
ordering from dealing: Shuffled draws a uniform permutation from a seeded
generator, Ordered replays a fixed order.

	d := cards.NewDeck(cards.Shuffled(cards.NewRand(42)))
	hand, err := d.Deal(7)
*/
package cards
