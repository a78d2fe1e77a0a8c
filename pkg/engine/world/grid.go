// Package world provides generic 2D grid-based primitives shared by the
// maze generator and the tile collapse engine.
package world

import "fmt"

// Point is a cell coordinate on a grid
type Point struct {
	X int
	Y int
}

// String returns the "(x, y)" representation of the point
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular grid of cells indexed [y][x]
type Grid[C any] struct {
	Width  int
	Height int
	Cells  [][]C
}

// NewGrid creates a grid with the given dimensions, filling every position
// with the value returned by build
func NewGrid[C any](width, height int, build func(x, y int) C) Grid[C] {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	cells := make([][]C, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]C, width)
		for x := 0; x < width; x++ {
			cells[y][x] = build(x, y)
		}
	}

	return Grid[C]{Width: width, Height: height, Cells: cells}
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid[C]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at the given position. ok is false when out of bounds.
func (g *Grid[C]) At(x, y int) (cell C, ok bool) {
	if !g.InBounds(x, y) {
		return cell, false
	}
	return g.Cells[y][x], true
}

// Neighbor returns the cell adjacent to (x, y) in the given direction
func (g *Grid[C]) Neighbor(x, y int, dir Direction) (cell C, ok bool) {
	if !dir.IsValid() {
		return cell, false
	}
	dx, dy := dir.Delta()
	return g.At(x+dx, y+dy)
}

// InBoundsDirections returns the directions from (x, y) that stay on the grid
func (g *Grid[C]) InBoundsDirections(x, y int) []Direction {
	dirs := make([]Direction, 0, 4)
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if g.InBounds(x+dx, y+dy) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Size returns the total number of cells
func (g *Grid[C]) Size() int {
	return g.Width * g.Height
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid[C]) ForEachCell(fn func(x, y int, cell C)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, g.Cells[y][x])
		}
	}
}
