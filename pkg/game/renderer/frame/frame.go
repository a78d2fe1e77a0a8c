// Package frame captures maze and map state into plain values that a
// graphical renderer can draw while generation carries on.
package frame

import (
	"slices"
	"sync"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/world"
)

// MazeCell is the drawable state of a maze cell
type MazeCell struct {
	IsMaze bool
	Open   [4]bool
}

// MapCell is the drawable state of a map cell
type MapCell struct {
	Collapsed bool
	Tile      collapse.Tile
	Entropy   int
}

// Frame is a copy of everything drawn in one frame. Maze and Map are nil
// when the run has not created them yet.
type Frame struct {
	Width  int
	Height int

	Maze [][]MazeCell
	Map  [][]MapCell

	// MaxEntropy is the largest number of candidates of any map cell
	MaxEntropy int
	// Collapsed counts the collapsed map cells
	Collapsed int

	HasHighlight bool
	Highlight    world.Point
	Path         []world.Point
	Progress     float64
	Backtracks   int
}

// Capture copies the state of mz and m. The caller must keep both from
// changing while Capture runs.
func Capture(mz *maze.Maze, m *collapse.Map) Frame {
	var f Frame

	if mz != nil {
		f.Width, f.Height = mz.Width, mz.Height
		f.Maze = make([][]MazeCell, mz.Height)
		for y := range f.Maze {
			f.Maze[y] = make([]MazeCell, mz.Width)
		}
		mz.ForEachCell(func(x, y int, cell *maze.MazeCell) {
			c := MazeCell{IsMaze: cell.IsMaze}
			for _, dir := range world.AllDirections() {
				c.Open[dir] = mz.WallByID(cell.Walls[dir]).Open
			}
			f.Maze[y][x] = c
		})
	}

	if m != nil {
		f.Width, f.Height = m.Width, m.Height
		f.Map = make([][]MapCell, m.Height)
		for y := range f.Map {
			f.Map[y] = make([]MapCell, m.Width)
		}
		m.ForEachCell(func(x, y int, cell *collapse.MapCell) {
			c := MapCell{Entropy: cell.Entropy()}
			if tile, ok := cell.Tile(); ok {
				c.Collapsed = true
				c.Tile = tile
				f.Collapsed++
			}
			f.MaxEntropy = max(f.MaxEntropy, c.Entropy)
			f.Map[y][x] = c
		})
	}

	return f
}

// Total returns the number of cells of the frame
func (f *Frame) Total() int {
	return f.Width * f.Height
}

// Tracker folds the events of a run into the highlight, walk path and
// progress shown on top of a frame. It is safe for concurrent use.
type Tracker struct {
	mu sync.Mutex

	hasHighlight bool
	highlight    world.Point
	path         []world.Point
	progress     float64
	backtracks   int
}

// Handle records one event. It matches event.Func.
func (t *Tracker) Handle(e event.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Kind {
	case event.CellHighlighted:
		t.hasHighlight = true
		t.highlight = world.Point{X: e.X, Y: e.Y}
	case event.PathUpdated:
		t.path = append(t.path[:0], e.Path...)
	case event.WallOpened:
		t.path = t.path[:0]
	case event.TileChecked:
		t.progress = e.Progress
	case event.Backtracked:
		t.backtracks++
	}
}

// Apply copies the tracked state into f
func (t *Tracker) Apply(f *Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f.HasHighlight = t.hasHighlight
	f.Highlight = t.highlight
	f.Path = slices.Clone(t.path)
	f.Progress = t.progress
	f.Backtracks = t.backtracks
}

// Reset forgets everything tracked so far
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hasHighlight = false
	t.highlight = world.Point{}
	t.path = nil
	t.progress = 0
	t.backtracks = 0
}

// Layout places a grid of cells inside an area
type Layout struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

// Fit returns the layout with the largest square cells, at least
// minCellSize, that fits a width x height grid into an areaW x areaH area,
// centered
func Fit(width, height, areaW, areaH, minCellSize int) Layout {
	if width <= 0 || height <= 0 {
		return Layout{CellSize: minCellSize}
	}

	size := min(areaW/width, areaH/height)
	size = max(size, minCellSize)

	return Layout{
		CellSize: size,
		OffsetX:  max(0, (areaW-size*width)/2),
		OffsetY:  max(0, (areaH-size*height)/2),
	}
}

// Cell returns the top left corner of the cell at (x, y)
func (l Layout) Cell(x, y int) (px, py int) {
	return l.OffsetX + x*l.CellSize, l.OffsetY + y*l.CellSize
}

// DominantSide returns the side a tile shows most often, the lowest side on
// a tie
func DominantSide(t collapse.Tile) collapse.Side {
	var counts [collapse.SideCount]int
	for _, dir := range world.AllDirections() {
		if s := t.Side(dir); s.IsValid() {
			counts[s]++
		}
	}

	best := collapse.Side(0)
	for _, s := range collapse.AllSides() {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
