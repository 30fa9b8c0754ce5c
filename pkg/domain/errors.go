package domain

import "errors"

// ErrNoGame is returned when a move is requested before any deal.
var ErrNoGame = errors.New("no game in progress")
