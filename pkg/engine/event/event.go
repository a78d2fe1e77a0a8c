// Package event defines the tagged events emitted by long running generation
// operations so that a renderer can visualise their progress.
package event

import "tilecollapse/pkg/engine/world"

// Kind identifies what happened
type Kind int

// Event kinds
const (
	// CellHighlighted marks the cell currently being worked on
	CellHighlighted Kind = iota
	// PathUpdated carries the random walk path walked so far
	PathUpdated
	// WallOpened reports a wall opened while carving or braiding
	WallOpened
	// TileChecked reports progress through the candidate tiles of a cell
	TileChecked
	// SideChecked reports one neighbour side compatibility check
	SideChecked
	// CellCollapsed reports a successful collapse decision
	CellCollapsed
	// Backtracked reports that a previous decision was reverted
	Backtracked
)

// String returns the name of the event kind
func (k Kind) String() string {
	switch k {
	case CellHighlighted:
		return "CellHighlighted"
	case PathUpdated:
		return "PathUpdated"
	case WallOpened:
		return "WallOpened"
	case TileChecked:
		return "TileChecked"
	case SideChecked:
		return "SideChecked"
	case CellCollapsed:
		return "CellCollapsed"
	case Backtracked:
		return "Backtracked"
	default:
		return "Unknown"
	}
}

// Event is a tagged value; only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// Cell the event refers to
	X int
	Y int

	// Direction of the checked side or opened wall
	Direction world.Direction

	// Success of a side check
	Success bool

	// Progress through the candidate tiles, in [0, 1]
	Progress float64

	// Path walked so far. Receivers must not retain it past the callback.
	Path []world.Point
}

// Func receives events synchronously. Its presence never changes the
// outcome of an operation.
type Func func(Event)

// Emit calls f with e. A nil Func is a no-op.
func (f Func) Emit(e Event) {
	if f != nil {
		f(e)
	}
}
