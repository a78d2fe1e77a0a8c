// Package maze builds mazes over a rectangular grid with a loop-erased
// random walk, in the manner of Wilson's algorithm, and can braid them by
// opening extra walls.
package maze

import (
	"errors"

	"tilecollapse/pkg/engine/world"
)

// ErrInvalidSize is returned when a maze is created with a non-positive width or height
var ErrInvalidSize = errors.New("maze: dimensions must be positive")

// WallID indexes the wall arena of a Maze
type WallID int

// Wall separates two cells, or a cell from the outside of the maze
type Wall struct {
	Open bool
}

// MazeCell is one position of a Maze. Adjacent cells hold the same WallID
// for the wall between them. SolverDirection is only meaningful while a
// random walk is passing through the cell.
type MazeCell struct {
	X int
	Y int

	IsMaze          bool
	SolverDirection world.Direction
	Walls           [4]WallID
}

// Maze is a grid of cells indexed [y][x] together with the walls between them
type Maze struct {
	world.Grid[*MazeCell]

	walls []Wall
}

// New creates a maze with every wall closed and no cell part of the maze
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	m := &Maze{
		walls: make([]Wall, 0, 2*width*height+width+height),
	}
	m.Grid = world.NewGrid(width, height, func(x, y int) *MazeCell {
		return &MazeCell{X: x, Y: y}
	})

	// cells are visited in row-major order, so the cell above and the cell
	// to the left already own the walls shared with them
	m.ForEachCell(func(x, y int, cell *MazeCell) {
		if up, ok := m.At(x, y-1); ok {
			cell.Walls[world.Up] = up.Walls[world.Down]
		} else {
			cell.Walls[world.Up] = m.newWall()
		}
		if left, ok := m.At(x-1, y); ok {
			cell.Walls[world.Left] = left.Walls[world.Right]
		} else {
			cell.Walls[world.Left] = m.newWall()
		}
		cell.Walls[world.Right] = m.newWall()
		cell.Walls[world.Down] = m.newWall()
	})

	return m, nil
}

func (m *Maze) newWall() WallID {
	m.walls = append(m.walls, Wall{})
	return WallID(len(m.walls) - 1)
}

// Cell returns the cell at (x, y) or nil when out of bounds
func (m *Maze) Cell(x, y int) *MazeCell {
	cell, ok := m.At(x, y)
	if !ok {
		return nil
	}
	return cell
}

// WallByID returns the wall with the given id
func (m *Maze) WallByID(id WallID) *Wall {
	return &m.walls[id]
}

// Wall returns the wall on the given side of the cell at (x, y), or nil when
// the cell is out of bounds
func (m *Maze) Wall(x, y int, dir world.Direction) *Wall {
	cell := m.Cell(x, y)
	if cell == nil || !dir.IsValid() {
		return nil
	}
	return m.WallByID(cell.Walls[dir])
}

// IsOpen reports whether the wall on the given side of (x, y) is open
func (m *Maze) IsOpen(x, y int, dir world.Direction) bool {
	wall := m.Wall(x, y, dir)
	return wall != nil && wall.Open
}

// WallCount returns the number of walls, border walls included
func (m *Maze) WallCount() int {
	return len(m.walls)
}
