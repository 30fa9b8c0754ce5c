package klondike

import "errors"

var (
	// ErrIllegalMove is returned when a move breaks a placement rule.
	// The game state is left unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNothingToDraw is returned when both stock and waste are empty.
	ErrNothingToDraw = errors.New("stock and waste are empty")

	// ErrInvalidColumn is returned for a tableau index outside 0..6. Messages
	// number columns from 1, as players type them.
	ErrInvalidColumn = errors.New("invalid tableau column")

	// ErrInvalidSuit is returned for a foundation suit that does not exist.
	ErrInvalidSuit = errors.New("invalid foundation suit")
)
