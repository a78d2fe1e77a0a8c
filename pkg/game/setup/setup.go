// Package setup wires a configuration into the engines, throttles and
// generator of one generation run.
package setup

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/event"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/game/config"
	"tilecollapse/pkg/game/generator"
	"tilecollapse/pkg/game/state"
	"tilecollapse/pkg/game/tilemap"
)

// Run holds everything needed to generate maps with one configuration
type Run struct {
	Config    config.Config
	Seed      int64
	Tiles     []collapse.Tile
	Engine    *collapse.Engine
	Carver    *maze.Generator
	Generator generator.GridGenerator
	Session   *state.Session

	// OnStage, when set, is called after the session was updated for a
	// new stage
	OnStage func(generator.Stage, *generator.Result)

	logger *log.Logger
}

// LoadTiles returns the tile palette for a tilemap setting: the embedded
// default tilemap when path is empty, every side combination for
// config.AllTiles, and the tilemap file at path otherwise
func LoadTiles(path string) ([]collapse.Tile, error) {
	switch path {
	case "":
		return tilemap.Default().Tiles(), nil
	case config.AllTiles:
		return collapse.AllPossibleTiles(), nil
	default:
		t, err := tilemap.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading tilemap %s: %w", path, err)
		}
		return t.Tiles(), nil
	}
}

// New validates cfg and builds a run. Both throttles take the session's
// guard so a renderer holding it sees the grids between two steps. A nil
// logger discards everything.
func New(cfg config.Config, session *state.Session, logger *log.Logger) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if session == nil {
		session = state.NewSession()
	}

	tiles, err := LoadTiles(cfg.TilemapPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	delay := cfg.Delay()
	mazeThrottle := throttle.New(delay)
	mazeThrottle.SetGuard(&session.Guard)
	mapThrottle := throttle.New(delay)
	mapThrottle.SetGuard(&session.Guard)

	engine := collapse.NewEngine(
		collapse.WithThrottle(mapThrottle),
		collapse.WithRand(rand.New(rand.NewSource(seed))),
		collapse.WithLogger(logger),
	)
	carver := maze.NewGenerator(
		maze.WithThrottle(mazeThrottle),
		maze.WithRand(rand.New(rand.NewSource(seed+1))),
		maze.WithLogger(logger),
	)
	carver.SetPathPercentage(cfg.PathPercentage)
	carver.SetWallRemovalPercentage(cfg.WallRemovalPercentage)

	gen, err := generator.New(cfg.Generator, engine, carver, cfg.MazeLimitOptions())
	if err != nil {
		return nil, err
	}

	return &Run{
		Config:    cfg,
		Seed:      seed,
		Tiles:     tiles,
		Engine:    engine,
		Carver:    carver,
		Generator: gen,
		Session:   session,
		logger:    logger,
	}, nil
}

// Throttles returns the throttles of the maze and map stages
func (r *Run) Throttles() []*throttle.Throttle {
	return []*throttle.Throttle{r.Carver.Throttle(), r.Engine.Throttle()}
}

// SetSpeed changes the animation speed of both stages, also while running
func (r *Run) SetSpeed(speed int) {
	if speed < 0 {
		speed = 0
	}
	if speed > throttle.MaxSpeed {
		speed = throttle.MaxSpeed
	}
	r.Config.AnimationSpeed = speed

	delay := r.Config.Delay()
	for _, t := range r.Throttles() {
		t.SetDelay(delay)
	}
}

// Processing reports whether any stage is inside a throttled operation
func (r *Run) Processing() bool {
	for _, t := range r.Throttles() {
		if t.Processing() {
			return true
		}
	}
	return false
}

// Execute generates one map synchronously, publishing every stage to the
// session. A canceled run is not an error.
func (r *Run) Execute(ctx context.Context, onEvent event.Func) (*generator.Result, error) {
	runID := r.Session.Start()
	r.logger.Printf("run %s: %s generator, %dx%d, %d tiles, seed %d",
		runID, r.Generator.Name(), r.Config.Width, r.Config.Height, len(r.Tiles), r.Seed)

	res, err := r.Generator.Generate(ctx, generator.Request{
		Width:   r.Config.Width,
		Height:  r.Config.Height,
		Tiles:   r.Tiles,
		OnEvent: onEvent,
		OnStage: r.publish,
	})

	canceled := res != nil && res.Canceled
	r.Session.Finish(canceled, err)

	switch {
	case err != nil:
		r.logger.Printf("run %s failed after %s: %v", runID, r.Session.Elapsed(), err)
	case canceled:
		r.logger.Printf("run %s canceled after %s", runID, r.Session.Elapsed())
	default:
		r.logger.Printf("run %s done in %s", runID, r.Session.Elapsed())
	}

	return res, err
}

func (r *Run) publish(stage generator.Stage, res *generator.Result) {
	switch stage {
	case generator.StageMaze:
		r.Session.SetMaze(res.Maze)
	case generator.StageMap:
		r.Session.SetMap(res.Map)
	}
	if r.OnStage != nil {
		r.OnStage(stage, res)
	}
}

// Handle is a run executing on its own goroutine
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}

	result *generator.Result
	err    error
}

// Start executes the run on a new goroutine
func (r *Run) Start(ctx context.Context, onEvent event.Func) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()
		h.result, h.err = r.Execute(ctx, onEvent)
	}()

	return h
}

// Done is closed when the run has returned
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel stops the run at its next step and waits until it has returned or
// ctx is done
func (h *Handle) Cancel(ctx context.Context) error {
	h.cancel()
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the run has returned and reports its outcome
func (h *Handle) Wait() (*generator.Result, error) {
	<-h.done
	return h.result, h.err
}

// StageMessage returns the translated description of a stage of this run
func (r *Run) StageMessage(stage generator.Stage) string {
	switch {
	case stage == generator.StageMaze:
		return gotext.Get("STAGE_MAZE")
	case r.Generator.Name() == generator.MazeName:
		return gotext.Get("STAGE_MAP")
	default:
		return gotext.Get("STAGE_COLLAPSE")
	}
}
