package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/maze"
)

// ErrUnknownGenerator is returned by New for names that are not registered
var ErrUnknownGenerator = errors.New("generator: unknown generator")

// Stage names the structure a generator just created
type Stage int

// Generation stages
const (
	StageMaze Stage = iota
	StageMap
)

// Request describes one generation run
type Request struct {
	Width  int
	Height int
	Tiles  []collapse.Tile

	// OnEvent receives progress events of every stage
	OnEvent event.Func

	// OnStage is called from the generating goroutine whenever a new maze or
	// map was created, before any work is done on it and outside of any
	// throttled run
	OnStage func(Stage, *Result)
}

// Result holds what a generator produced. When Canceled is set the
// structures are only partially generated.
type Result struct {
	Maze     *maze.Maze
	Map      *collapse.Map
	Canceled bool
}

// GridGenerator is an interface for map generation pipelines
type GridGenerator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Name() string
}

// Generator names
const (
	CollapseName = "collapse"
	MazeName     = "maze"
)

// DefaultName is the name of the default generator
const DefaultName = MazeName

// New returns the generator with the given name, built on engine and carver
func New(name string, engine *collapse.Engine, carver *maze.Generator, opts MazeLimitOptions) (GridGenerator, error) {
	switch name {
	case CollapseName:
		return &CollapseGenerator{Engine: engine}, nil
	case MazeName:
		return &MazeGenerator{Engine: engine, Carver: carver, Options: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := []string{CollapseName, MazeName}
	sort.Strings(names)
	return names
}

func (req Request) stage(s Stage, res *Result) {
	if req.OnStage != nil {
		req.OnStage(s, res)
	}
}
