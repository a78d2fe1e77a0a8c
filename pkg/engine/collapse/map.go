package collapse

import (
	"slices"

	"tilecollapse/pkg/engine/world"
)

// MapCell is one position of a Map. Sides[d] holds the distinct sides the
// remaining tiles expose in direction d, in the order they first appear.
type MapCell struct {
	X int
	Y int

	PossibleTiles []Tile
	Collapsed     bool
	Sides         [4][]Side
}

// Tile returns the tile of a collapsed cell
func (c *MapCell) Tile() (Tile, bool) {
	if !c.Collapsed || len(c.PossibleTiles) == 0 {
		return Tile{}, false
	}
	return c.PossibleTiles[0], true
}

// Entropy returns the number of tiles the cell may still become
func (c *MapCell) Entropy() int {
	return len(c.PossibleTiles)
}

// setPossibleTiles replaces the candidates of the cell and re-derives its
// side sets. The slice is owned by the cell from now on and is never
// modified in place.
func (c *MapCell) setPossibleTiles(tiles []Tile) {
	c.PossibleTiles = tiles
	c.Sides = deriveSides(tiles)
}

// Map is a grid of cells indexed [y][x]
type Map struct {
	world.Grid[*MapCell]
}

// NewMap creates a map where every cell may still become any of tiles
func NewMap(width, height int, tiles []Tile) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}

	sides := deriveSides(tiles)
	grid := world.NewGrid(width, height, func(x, y int) *MapCell {
		cell := &MapCell{X: x, Y: y, PossibleTiles: slices.Clone(tiles)}
		for d := range sides {
			cell.Sides[d] = slices.Clone(sides[d])
		}
		return cell
	})

	return &Map{Grid: grid}, nil
}

// Cell returns the cell at (x, y) or nil when out of bounds
func (m *Map) Cell(x, y int) *MapCell {
	cell, ok := m.At(x, y)
	if !ok {
		return nil
	}
	return cell
}

// IsCollapsed reports whether every cell is collapsed
func (m *Map) IsCollapsed() bool {
	for _, row := range m.Cells {
		for _, cell := range row {
			if !cell.Collapsed {
				return false
			}
		}
	}
	return true
}

// UncollapsedCells returns the cells that are not collapsed, in row-major order
func (m *Map) UncollapsedCells() []*MapCell {
	var cells []*MapCell
	m.ForEachCell(func(_, _ int, cell *MapCell) {
		if !cell.Collapsed {
			cells = append(cells, cell)
		}
	})
	return cells
}

// deriveSides projects tiles onto each direction and keeps the first
// occurrence of every side
func deriveSides(tiles []Tile) [4][]Side {
	var sides [4][]Side
	for _, dir := range world.AllDirections() {
		for _, tile := range tiles {
			if s := tile.Side(dir); !slices.Contains(sides[dir], s) {
				sides[dir] = append(sides[dir], s)
			}
		}
	}
	return sides
}

// tileSides returns the sides of a single tile as side sets
func tileSides(tile Tile) [4][]Side {
	var sides [4][]Side
	for _, dir := range world.AllDirections() {
		sides[dir] = []Side{tile.Side(dir)}
	}
	return sides
}
