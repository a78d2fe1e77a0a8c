package generator

import (
	"context"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
)

// MazeGenerator carves a maze, constrains a map so the maze paths become
// paths of the chosen side type, and then collapses the map
type MazeGenerator struct {
	Engine  *collapse.Engine
	Carver  *maze.Generator
	Options MazeLimitOptions
}

// Name returns the name of this generator
func (g *MazeGenerator) Name() string {
	return MazeName
}

// Generate runs the maze, bridge and collapse stages. It stops after the
// first stage that was canceled.
func (g *MazeGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	mz, err := maze.New(req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	res := &Result{Maze: mz}
	req.stage(StageMaze, res)

	if err := g.Carver.ProcessMaze(ctx, mz, req.OnEvent); err != nil {
		return res, err
	}
	if g.Carver.Throttle().Canceled() {
		res.Canceled = true
		return res, nil
	}

	m, err := collapse.NewMap(req.Width, req.Height, req.Tiles)
	if err != nil {
		return res, err
	}
	res.Map = m
	req.stage(StageMap, res)

	if err := LimitMapToMaze(ctx, g.Engine, m, mz, g.Options, req.OnEvent); err != nil {
		return res, err
	}
	if g.Engine.Throttle().Canceled() {
		res.Canceled = true
		return res, nil
	}

	if err := g.Engine.FullCollapse(ctx, m, req.OnEvent); err != nil {
		return res, err
	}
	res.Canceled = g.Engine.Throttle().Canceled()
	return res, nil
}
