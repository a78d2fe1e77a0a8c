package generator

import (
	"context"

	"tilecollapse/pkg/engine/collapse"
)

// CollapseGenerator fills an unconstrained map with the collapse engine
type CollapseGenerator struct {
	Engine *collapse.Engine
}

// Name returns the name of this generator
func (g *CollapseGenerator) Name() string {
	return CollapseName
}

// Generate creates a map of the requested size and fully collapses it
func (g *CollapseGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	m, err := collapse.NewMap(req.Width, req.Height, req.Tiles)
	if err != nil {
		return nil, err
	}

	res := &Result{Map: m}
	req.stage(StageMap, res)

	if err := g.Engine.FullCollapse(ctx, m, req.OnEvent); err != nil {
		return res, err
	}
	res.Canceled = g.Engine.Throttle().Canceled()
	return res, nil
}
