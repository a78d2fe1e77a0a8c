package collapse

import (
	"context"
	"slices"

	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/world"
)

// FailureKind tells why a narrowing call failed
type FailureKind int

// Failure kinds
const (
	// FailureNone means the call succeeded
	FailureNone FailureKind = iota
	// FailureNoCandidates means the call was given no candidate tiles at all
	FailureNoCandidates
	// FailureContradiction means a cell ran out of tiles while filtering
	FailureContradiction
)

// String returns the name of the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureNoCandidates:
		return "NoCandidates"
	case FailureContradiction:
		return "Contradiction"
	default:
		return "Unknown"
	}
}

// Result is the outcome of LimitTilePossibilities. OldCellStates holds every
// cell the call touched, also when it failed, so the caller can revert the
// partial changes.
type Result struct {
	Success       bool
	OldCellStates OldCellStates

	Failure FailureKind
	FailedX int
	FailedY int
}

// LimitTilePossibilities narrows the cell at (x, y) to the candidates that
// fit its neighbours and propagates the change to neighbours whose side sets
// no longer match. The returned error is only ever a cancellation.
func (e *Engine) LimitTilePossibilities(ctx context.Context, m *Map, x, y int, candidates []Tile, onEvent event.Func) (Result, error) {
	result := Result{OldCellStates: make(OldCellStates)}

	cell := m.Cell(x, y)
	if cell == nil {
		result.Failure = FailureNoCandidates
		result.FailedX, result.FailedY = x, y
		return result, nil
	}

	if len(candidates) == 0 {
		result.OldCellStates.record(cell)
		result.Failure = FailureNoCandidates
		result.FailedX, result.FailedY = x, y
		return result, nil
	}

	failed, err := e.limit(ctx, m, cell, candidates, result.OldCellStates, onEvent)
	if err != nil {
		return result, err
	}
	if failed != nil {
		result.Failure = FailureContradiction
		result.FailedX, result.FailedY = failed.X, failed.Y
		return result, nil
	}

	result.Success = true
	return result, nil
}

// Collapse narrows the cell at (x, y) to the single given tile
func (e *Engine) Collapse(ctx context.Context, m *Map, x, y int, tile Tile, onEvent event.Func) (Result, error) {
	return e.LimitTilePossibilities(ctx, m, x, y, []Tile{tile}, onEvent)
}

// limit filters candidates for cell and recurses into changed neighbours. It
// returns the cell that ran out of tiles, or nil on success.
func (e *Engine) limit(ctx context.Context, m *Map, cell *MapCell, candidates []Tile, old OldCellStates, onEvent event.Func) (*MapCell, error) {
	old.record(cell)
	onEvent.Emit(event.Event{Kind: event.CellHighlighted, X: cell.X, Y: cell.Y})

	survivors := make([]Tile, 0, len(candidates))
	for i, tile := range candidates {
		if err := e.throttle.Step(ctx); err != nil {
			return nil, err
		}
		if fits(m, cell, tile, onEvent) {
			survivors = append(survivors, tile)
		}
		onEvent.Emit(event.Event{
			Kind:     event.TileChecked,
			X:        cell.X,
			Y:        cell.Y,
			Progress: float64(i+1) / float64(len(candidates)),
		})
	}

	if len(survivors) == 0 {
		return cell, nil
	}

	cell.setPossibleTiles(survivors)
	if len(survivors) == 1 {
		cell.Collapsed = true
		cell.Sides = tileSides(survivors[0])
	}

	for _, dir := range world.AllDirections() {
		neighbor, ok := m.Neighbor(cell.X, cell.Y, dir)
		if !ok || neighbor.Collapsed {
			continue
		}
		if len(neighbor.Sides[dir.Opposite()]) == len(cell.Sides[dir]) {
			continue
		}

		failed, err := e.limit(ctx, m, neighbor, neighbor.PossibleTiles, old, onEvent)
		if err != nil || failed != nil {
			return failed, err
		}
	}

	return nil, nil
}

// fits reports whether tile matches the facing side set of every existing
// neighbour of cell. It stops at the first mismatch.
func fits(m *Map, cell *MapCell, tile Tile, onEvent event.Func) bool {
	for _, dir := range world.AllDirections() {
		neighbor, ok := m.Neighbor(cell.X, cell.Y, dir)
		if !ok {
			continue
		}

		match := slices.Contains(neighbor.Sides[dir.Opposite()], tile.Side(dir))
		onEvent.Emit(event.Event{
			Kind:      event.SideChecked,
			X:         cell.X,
			Y:         cell.Y,
			Direction: dir,
			Success:   match,
		})
		if !match {
			return false
		}
	}
	return true
}
