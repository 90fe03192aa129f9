package core

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrMalformedInput is returned when the supplied cells do not match the
	// declared dimensions, or a pattern cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
