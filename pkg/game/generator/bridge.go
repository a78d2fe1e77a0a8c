package generator

import (
	"context"
	"errors"
	"fmt"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/engine/world"
)

// ErrNoPossibleTiles is returned when a map cell has no tile left that
// matches the maze
var ErrNoPossibleTiles = errors.New("generator: could not limit map to maze, no possible tiles left")

// MazeLimitOptions controls how a maze constrains a map
type MazeLimitOptions struct {
	// SideType is the side that marks a path
	SideType collapse.Side

	// AllowSideConnections lets a maze cell show SideType towards a closed wall
	AllowSideConnections bool

	// AllowTilesOutsideWithSide lets cells outside the maze show SideType
	AllowTilesOutsideWithSide bool
}

// DefaultMazeLimitOptions returns roads for paths, with no road leaking
// outside the maze
func DefaultMazeLimitOptions() MazeLimitOptions {
	return MazeLimitOptions{SideType: collapse.Road}
}

// LimitMapToMaze narrows every cell of m that has a maze cell at the same
// position. A maze cell must show SideType towards each open wall and, unless
// side connections are allowed, must not show it towards a closed wall. A
// cell outside the maze must not show SideType at all unless
// AllowTilesOutsideWithSide is set. Side connections are only allowed
// together with AllowTilesOutsideWithSide.
//
// Every cell is narrowed through the engine, so constraints propagate. A
// cell left without tiles aborts with an error wrapping ErrNoPossibleTiles;
// m must then be recreated. A canceled run returns nil.
func LimitMapToMaze(ctx context.Context, engine *collapse.Engine, m *collapse.Map, mz *maze.Maze, opts MazeLimitOptions, onEvent event.Func) error {
	tr := engine.Throttle()
	if err := tr.Begin(); err != nil {
		return err
	}
	defer tr.End()

	if !opts.AllowTilesOutsideWithSide {
		opts.AllowSideConnections = false
	}

	err := limitMapToMaze(ctx, engine, m, mz, opts, onEvent)
	if errors.Is(err, throttle.ErrCanceled) {
		return nil
	}
	return err
}

func limitMapToMaze(ctx context.Context, engine *collapse.Engine, m *collapse.Map, mz *maze.Maze, opts MazeLimitOptions, onEvent event.Func) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			mazeCell := mz.Cell(x, y)
			if mazeCell == nil {
				continue
			}
			if !mazeCell.IsMaze && opts.AllowTilesOutsideWithSide {
				continue
			}

			keep := func(tile collapse.Tile) bool { return !tile.HasSide(opts.SideType) }
			if mazeCell.IsMaze {
				keep = func(tile collapse.Tile) bool { return fitsMazeCell(tile, mz, x, y, opts) }
			}

			var candidates []collapse.Tile
			for _, tile := range m.Cell(x, y).PossibleTiles {
				if keep(tile) {
					candidates = append(candidates, tile)
				}
			}

			result, err := engine.LimitTilePossibilities(ctx, m, x, y, candidates, onEvent)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%w at %s", ErrNoPossibleTiles, world.Point{X: x, Y: y})
			}
		}
	}
	return nil
}

func fitsMazeCell(tile collapse.Tile, mz *maze.Maze, x, y int, opts MazeLimitOptions) bool {
	for _, dir := range world.AllDirections() {
		side := tile.Side(dir)
		if mz.IsOpen(x, y, dir) {
			if side != opts.SideType {
				return false
			}
		} else if !opts.AllowSideConnections && side == opts.SideType {
			return false
		}
	}
	return true
}
