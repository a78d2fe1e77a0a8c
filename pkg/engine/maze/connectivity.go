package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"tilecollapse/pkg/engine/world"
)

// Reachable returns every cell that can be reached from (x, y) through open
// walls, (x, y) included
func (m *Maze) Reachable(x, y int) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !m.InBounds(x, y) {
		return visited
	}

	q := queue.New[world.Point]()
	start := world.Point{X: x, Y: y}
	visited.Put(start)
	q.Enqueue(start)

	for !q.Empty() {
		p := q.Dequeue()
		for _, dir := range m.InBoundsDirections(p.X, p.Y) {
			if !m.IsOpen(p.X, p.Y, dir) {
				continue
			}
			next := p.Step(dir)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}

	return visited
}

// IsConnected reports whether every maze cell can be reached from every
// other one through open walls
func (m *Maze) IsConnected() bool {
	cells := m.MazeCells()
	if len(cells) == 0 {
		return true
	}
	reached := m.Reachable(cells[0].X, cells[0].Y)
	for _, p := range cells[1:] {
		if !reached.Has(p) {
			return false
		}
	}
	return true
}

// MazeCells returns the positions of all cells that are part of the maze, in
// row-major order
func (m *Maze) MazeCells() []world.Point {
	var points []world.Point
	m.ForEachCell(func(x, y int, cell *MazeCell) {
		if cell.IsMaze {
			points = append(points, world.Point{X: x, Y: y})
		}
	})
	return points
}

func (m *Maze) nonMazeCells() []*MazeCell {
	var cells []*MazeCell
	m.ForEachCell(func(_, _ int, cell *MazeCell) {
		if !cell.IsMaze {
			cells = append(cells, cell)
		}
	})
	return cells
}
