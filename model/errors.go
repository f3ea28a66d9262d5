package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrUnknownBoundary is returned for a boundary policy that is neither wrap nor zero-fill
	ErrUnknownBoundary = errors.New("unknown boundary policy")
	// ErrDimensionMismatch is returned when two grid-shaped values disagree on width or height
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
