package life

import "errors"

var (
	// ErrInvalidArgument is returned for a non-positive cell size, negative
	// bounds or a fill probability outside [0, 1].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds is returned by the checked mutators for coordinates
	// outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
