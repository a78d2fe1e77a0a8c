package collapse

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zyedidia/generic/stack"

	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/engine/world"
)

// FullCollapse collapses every cell of m. It returns ErrUnsolvable when the
// search runs out of decisions to revert; m is then in an undefined state
// and should be recreated. A cancelled run returns nil and leaves m at its
// last completed decision.
func (e *Engine) FullCollapse(ctx context.Context, m *Map, onEvent event.Func) error {
	if err := e.throttle.Begin(); err != nil {
		return err
	}
	defer e.throttle.End()

	started := time.Now()
	err := e.fullCollapse(ctx, m, onEvent)
	switch {
	case errors.Is(err, throttle.ErrCanceled):
		e.logger.Printf("collapse canceled after %d steps", e.throttle.Steps())
		return nil
	case err != nil:
		e.logger.Printf("collapse failed: %v", err)
		return err
	}

	e.logger.Printf("collapsed %dx%d map in %s", m.Width, m.Height, time.Since(started).Round(time.Millisecond))
	return nil
}

func (e *Engine) fullCollapse(ctx context.Context, m *Map, onEvent event.Func) error {
	history := stack.New[OldCellStates]()
	uncollapsed := m.UncollapsedCells()

	// the last cell that had no viable tile is retried before any other
	var priority *MapCell
	backtracks := 0

	for {
		uncollapsed = slices.DeleteFunc(uncollapsed, func(c *MapCell) bool { return c.Collapsed })
		if len(uncollapsed) == 0 {
			if backtracks > 0 {
				e.logger.Printf("collapse needed %d backtracks", backtracks)
			}
			return nil
		}

		cell := pickCell(uncollapsed, priority)

		candidates := slices.Clone(cell.PossibleTiles)
		e.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		collapsed := false
		for _, tile := range candidates {
			result, err := e.Collapse(ctx, m, cell.X, cell.Y, tile, onEvent)
			if err != nil {
				ResetOldCellStates(m, result.OldCellStates)
				return err
			}
			if result.Success {
				history.Push(result.OldCellStates)
				collapsed = true
				onEvent.Emit(event.Event{Kind: event.CellCollapsed, X: cell.X, Y: cell.Y})
				break
			}
			ResetOldCellStates(m, result.OldCellStates)
		}

		if collapsed {
			if cell == priority {
				priority = nil
			}
			continue
		}

		priority = cell
		if history.Size() == 0 {
			return fmt.Errorf("%w: no tile fits at %s", ErrUnsolvable, world.Point{X: cell.X, Y: cell.Y})
		}

		ResetOldCellStates(m, history.Pop())
		backtracks++
		onEvent.Emit(event.Event{Kind: event.Backtracked, X: cell.X, Y: cell.Y})

		// reverted decisions may have uncollapsed any cell
		uncollapsed = m.UncollapsedCells()
	}
}

// pickCell returns the priority cell while it is still open, otherwise the
// first cell with the fewest candidates
func pickCell(cells []*MapCell, priority *MapCell) *MapCell {
	if priority != nil && !priority.Collapsed {
		return priority
	}

	best := cells[0]
	for _, cell := range cells[1:] {
		if cell.Entropy() < best.Entropy() {
			best = cell
		}
	}
	return best
}
