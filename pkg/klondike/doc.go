/*
Package klondike implements the piles and move rules of Klondike solitaire.

# Piles

  - StockWaste: the face-down draw pile and the face-up waste, recycled when
    the stock runs out.
  - Foundation: four suit stacks built from Ace to King. Filling all four wins.
  - Tableau: seven columns, each a hidden run under a visible run that
    descends in alternating colors.

Pile methods return a bool and never mutate on rejection: callers check
before they pop. Game wraps the piles of a single deal and reports rejected
moves as errors wrapping ErrIllegalMove.

Tableau columns are 0-based here. Conversion from the 1-based numbers typed
by a player happens once, in the command parser.
*/
package klondike
