package maze

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/engine/world"
)

// Default generation parameters
const (
	DefaultPathPercentage        = 0.5
	DefaultWallRemovalPercentage = 0.4
)

// Generator carves mazes. Percentages are read when ProcessMaze starts.
type Generator struct {
	throttle *throttle.Throttle
	rng      *rand.Rand
	logger   *log.Logger

	pathPercentage        float64
	wallRemovalPercentage float64
}

// Option configures a Generator
type Option func(*Generator)

// WithThrottle sets the throttle the generator yields to
func WithThrottle(t *throttle.Throttle) Option {
	return func(g *Generator) {
		if t != nil {
			g.throttle = t
		}
	}
}

// WithRand sets the random source
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed seeds a new random source
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for run progress
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator with the default percentages
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		throttle:              throttle.New(0),
		rng:                   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:                log.New(io.Discard, "", 0),
		pathPercentage:        DefaultPathPercentage,
		wallRemovalPercentage: DefaultWallRemovalPercentage,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Throttle returns the throttle the generator yields to
func (g *Generator) Throttle() *throttle.Throttle {
	return g.throttle
}

// SetPathPercentage sets the share of cells, in [0, 1], that must be part of
// the maze before carving stops
func (g *Generator) SetPathPercentage(p float64) {
	g.pathPercentage = clamp01(p)
}

// PathPercentage returns the share of cells carved into the maze
func (g *Generator) PathPercentage() float64 {
	return g.pathPercentage
}

// SetWallRemovalPercentage sets the chance, in [0, 1], that a closed wall
// between two maze cells is opened after carving
func (g *Generator) SetWallRemovalPercentage(p float64) {
	g.wallRemovalPercentage = clamp01(p)
}

// WallRemovalPercentage returns the braiding chance
func (g *Generator) WallRemovalPercentage() float64 {
	return g.wallRemovalPercentage
}

// ProcessMaze carves m in place. A cancelled run returns nil and leaves the
// maze as far as it got.
func (g *Generator) ProcessMaze(ctx context.Context, m *Maze, onEvent event.Func) error {
	if err := g.throttle.Begin(); err != nil {
		return err
	}
	defer g.throttle.End()

	started := time.Now()
	err := g.process(ctx, m, g.pathPercentage, g.wallRemovalPercentage, onEvent)
	if errors.Is(err, throttle.ErrCanceled) {
		g.logger.Printf("maze generation canceled after %d steps", g.throttle.Steps())
		return nil
	}
	if err != nil {
		return err
	}

	g.logger.Printf("generated %dx%d maze with %d cells in %s, connected: %t",
		m.Width, m.Height, len(m.MazeCells()), time.Since(started).Round(time.Millisecond), m.IsConnected())
	return nil
}

func (g *Generator) process(ctx context.Context, m *Maze, pathPercentage, wallRemovalPercentage float64, onEvent event.Func) error {
	total := m.Size()

	seed := m.Cells[g.rng.Intn(m.Height)][g.rng.Intn(m.Width)]
	seed.IsMaze = true
	onEvent.Emit(event.Event{Kind: event.CellHighlighted, X: seed.X, Y: seed.Y})

	for {
		open := m.nonMazeCells()
		if len(open) == 0 || float64(total-len(open))/float64(total) >= pathPercentage {
			break
		}

		start := open[g.rng.Intn(len(open))]
		if err := g.walk(ctx, m, start, onEvent); err != nil {
			return err
		}
		g.carve(m, start, onEvent)
	}

	if !m.IsConnected() {
		g.logger.Printf("carving left maze cells unreachable from the seed cell")
	}

	g.braid(m, wallRemovalPercentage, onEvent)
	return nil
}

// walk moves randomly from start until it reaches a maze cell, recording the
// direction last taken out of every cell it passes
func (g *Generator) walk(ctx context.Context, m *Maze, start *MazeCell, onEvent event.Func) error {
	path := []world.Point{{X: start.X, Y: start.Y}}
	index := map[world.Point]int{path[0]: 0}

	cell := start
	for !cell.IsMaze {
		if err := g.throttle.Step(ctx); err != nil {
			return err
		}

		dirs := m.InBoundsDirections(cell.X, cell.Y)
		dir := dirs[g.rng.Intn(len(dirs))]
		cell.SolverDirection = dir
		cell, _ = m.Neighbor(cell.X, cell.Y, dir)

		// the reported path drops loops the same way carving will
		p := world.Point{X: cell.X, Y: cell.Y}
		if i, ok := index[p]; ok {
			for _, dropped := range path[i+1:] {
				delete(index, dropped)
			}
			path = path[:i+1]
		} else {
			index[p] = len(path)
			path = append(path, p)
		}
		onEvent.Emit(event.Event{Kind: event.PathUpdated, X: cell.X, Y: cell.Y, Path: path})
	}
	return nil
}

// carve follows the recorded directions from start to the maze, adding every
// cell on the way and opening the walls between them
func (g *Generator) carve(m *Maze, start *MazeCell, onEvent event.Func) {
	cell := start
	for !cell.IsMaze {
		cell.IsMaze = true
		dir := cell.SolverDirection
		m.Wall(cell.X, cell.Y, dir).Open = true
		onEvent.Emit(event.Event{Kind: event.WallOpened, X: cell.X, Y: cell.Y, Direction: dir})
		cell, _ = m.Neighbor(cell.X, cell.Y, dir)
	}
}

// braid opens closed walls between two maze cells with the given chance
func (g *Generator) braid(m *Maze, chance float64, onEvent event.Func) {
	if chance <= 0 {
		return
	}

	opened := 0
	m.ForEachCell(func(x, y int, cell *MazeCell) {
		if !cell.IsMaze {
			return
		}
		for _, dir := range []world.Direction{world.Right, world.Down} {
			neighbor, ok := m.Neighbor(x, y, dir)
			if !ok || !neighbor.IsMaze {
				continue
			}
			wall := m.Wall(x, y, dir)
			if wall.Open || g.rng.Float64() >= chance {
				continue
			}
			wall.Open = true
			opened++
			onEvent.Emit(event.Event{Kind: event.WallOpened, X: x, Y: y, Direction: dir})
		}
	})
	g.logger.Printf("braiding opened %d walls", opened)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
