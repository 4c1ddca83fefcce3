package mines

import "errors"

var (
	// ErrInvalidConfiguration is returned when rules or a bomb count cannot
	// be satisfied by the board size.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrBombsPlaced          = errors.New("bombs already placed")
)
