package ca

import "errors"

// Sentinel errors returned by construction and mutation entry points.
// All validation happens before any state is touched, so a non-nil
// error always means the operation did not happen.
var (
	// ErrUnsupportedDimension indicates a universe rank outside {1, 2}.
	ErrUnsupportedDimension = errors.New("ca: only one- and two-dimensional universes are supported")
	// ErrInfiniteUniverse indicates an unbounded size where a concrete grid must be allocated.
	ErrInfiniteUniverse = errors.New("ca: infinite universes are not supported")
	// ErrNonPositiveExtent indicates a bounded size with extent < 1.
	ErrNonPositiveExtent = errors.New("ca: universe extent must be positive")
	// ErrNonSquareGrid indicates an initial state whose axis lengths differ.
	ErrNonSquareGrid = errors.New("ca: initial state must have the same extent along every axis")
	// ErrNonRectangular indicates a 2-D pattern with rows of differing lengths.
	ErrNonRectangular = errors.New("ca: pattern rows must all have the same length")
	// ErrEmptyPattern indicates a pattern with no cells.
	ErrEmptyPattern = errors.New("ca: pattern must contain at least one cell")
	// ErrDimensionMismatch indicates a rank or coordinate-arity disagreement.
	ErrDimensionMismatch = errors.New("ca: dimension mismatch")
	// ErrOutOfBounds indicates a coordinate outside the valid index range.
	ErrOutOfBounds = errors.New("ca: coordinate out of bounds")
	// ErrBadCellState indicates a cell state outside {0, 1}.
	ErrBadCellState = errors.New("ca: cell state must be 0 or 1")
)
