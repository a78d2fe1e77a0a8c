package collapse

import "errors"

var (
	// ErrUnsolvable is returned by FullCollapse when a cell has no viable
	// tile and there is no decision left to revert.
	ErrUnsolvable = errors.New("collapse: no tiles left, map is unsolvable")

	// ErrInvalidSize is returned when a map is created with a non-positive width or height
	ErrInvalidSize = errors.New("collapse: map dimensions must be positive")

	// ErrNoTiles is returned when a map is created from an empty tile palette
	ErrNoTiles = errors.New("collapse: tile palette is empty")

	// ErrUnknownSide is returned by ParseSide for names that are not a Side
	ErrUnknownSide = errors.New("collapse: unknown side")
)
