package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/world"
)

// carvedMaze returns a processed maze with braiding disabled
func carvedMaze(t *testing.T, width, height int, seed int64) *maze.Maze {
	t.Helper()
	mz, err := maze.New(width, height)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	carver := maze.NewGenerator(maze.WithSeed(seed))
	carver.SetWallRemovalPercentage(0)
	if err := carver.ProcessMaze(context.Background(), mz, nil); err != nil {
		t.Fatalf("ProcessMaze: %v", err)
	}
	return mz
}

// checkMazeConstraints verifies every remaining tile of m against the maze
func checkMazeConstraints(t *testing.T, m *collapse.Map, mz *maze.Maze, side collapse.Side) {
	t.Helper()
	m.ForEachCell(func(x, y int, cell *collapse.MapCell) {
		mazeCell := mz.Cell(x, y)
		for _, tile := range cell.PossibleTiles {
			if !mazeCell.IsMaze {
				if tile.HasSide(side) {
					t.Errorf("cell (%d,%d) outside the maze keeps %v", x, y, tile)
				}
				continue
			}
			for _, dir := range world.AllDirections() {
				open := mz.IsOpen(x, y, dir)
				if open && tile.Side(dir) != side {
					t.Errorf("cell (%d,%d) keeps %v without %s towards open %s wall", x, y, tile, side, dir)
				}
				if !open && tile.Side(dir) == side {
					t.Errorf("cell (%d,%d) keeps %v with %s towards closed %s wall", x, y, tile, side, dir)
				}
			}
		}
	})
}

func TestLimitMapToMaze(t *testing.T) {
	mz := carvedMaze(t, 8, 6, 1)
	m, err := collapse.NewMap(8, 6, collapse.AllPossibleTiles())
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	engine := collapse.NewEngine(collapse.WithSeed(1))

	if err := LimitMapToMaze(context.Background(), engine, m, mz, DefaultMazeLimitOptions(), nil); err != nil {
		t.Fatalf("LimitMapToMaze: %v", err)
	}
	checkMazeConstraints(t, m, mz, collapse.Road)

	if err := engine.FullCollapse(context.Background(), m, nil); err != nil {
		t.Fatalf("FullCollapse: %v", err)
	}
	if !m.IsCollapsed() {
		t.Fatal("map is not collapsed")
	}
	checkMazeConstraints(t, m, mz, collapse.Road)
}

func TestLimitMapToMaze_SideConnectionsNeedOutsideTiles(t *testing.T) {
	mz := carvedMaze(t, 6, 5, 2)
	m, err := collapse.NewMap(6, 5, collapse.AllPossibleTiles())
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	opts := MazeLimitOptions{SideType: collapse.Water, AllowSideConnections: true}
	if err := LimitMapToMaze(context.Background(), collapse.NewEngine(), m, mz, opts, nil); err != nil {
		t.Fatalf("LimitMapToMaze: %v", err)
	}

	// connections were switched off, so closed walls never show water
	checkMazeConstraints(t, m, mz, collapse.Water)
}

func TestLimitMapToMaze_NoPossibleTiles(t *testing.T) {
	var tiles []collapse.Tile
	for _, tile := range collapse.AllPossibleTiles() {
		if !tile.HasSide(collapse.Road) {
			tiles = append(tiles, tile)
		}
	}

	mz := carvedMaze(t, 15, 17, 3)
	m, err := collapse.NewMap(15, 17, tiles)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	err = LimitMapToMaze(context.Background(), collapse.NewEngine(), m, mz, DefaultMazeLimitOptions(), nil)
	if !errors.Is(err, ErrNoPossibleTiles) {
		t.Fatalf("expected ErrNoPossibleTiles, got %v", err)
	}

	first := mz.MazeCells()[0]
	if !strings.Contains(err.Error(), first.String()) {
		t.Errorf("error %q does not name the first maze cell %s", err, first)
	}
}

func TestLimitMapToMaze_SmallerMaze(t *testing.T) {
	mz := carvedMaze(t, 3, 3, 4)
	m, err := collapse.NewMap(5, 5, collapse.AllPossibleTiles())
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	if err := LimitMapToMaze(context.Background(), collapse.NewEngine(), m, mz, DefaultMazeLimitOptions(), nil); err != nil {
		t.Fatalf("LimitMapToMaze: %v", err)
	}
}

func TestLimitMapToMaze_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mz := carvedMaze(t, 4, 4, 5)
	m, err := collapse.NewMap(4, 4, collapse.AllPossibleTiles())
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	engine := collapse.NewEngine()

	if err := LimitMapToMaze(ctx, engine, m, mz, DefaultMazeLimitOptions(), nil); err != nil {
		t.Fatalf("canceled LimitMapToMaze returned %v", err)
	}
	if !engine.Throttle().Canceled() {
		t.Error("throttle does not report the cancellation")
	}
	if engine.Throttle().Processing() {
		t.Error("throttle still processing")
	}
}

func TestNew(t *testing.T) {
	engine := collapse.NewEngine()
	carver := maze.NewGenerator()

	for _, name := range Names() {
		g, err := New(name, engine, carver, DefaultMazeLimitOptions())
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if g.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, g.Name())
		}
	}

	if _, err := New("wave", engine, carver, DefaultMazeLimitOptions()); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestMazeGenerator_Generate(t *testing.T) {
	carver := maze.NewGenerator(maze.WithSeed(6))
	carver.SetWallRemovalPercentage(0.3)
	g, err := New(MazeName, collapse.NewEngine(collapse.WithSeed(6)), carver, DefaultMazeLimitOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var stages []Stage
	res, err := g.Generate(context.Background(), Request{
		Width:  10,
		Height: 8,
		Tiles:  collapse.AllPossibleTiles(),
		OnStage: func(s Stage, r *Result) {
			stages = append(stages, s)
			if s == StageMap && r.Map == nil {
				t.Error("StageMap reported without a map")
			}
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Canceled {
		t.Fatal("run reported as canceled")
	}
	if len(stages) != 2 || stages[0] != StageMaze || stages[1] != StageMap {
		t.Errorf("unexpected stages %v", stages)
	}
	if !res.Map.IsCollapsed() {
		t.Fatal("map is not collapsed")
	}
	checkMazeConstraints(t, res.Map, res.Maze, collapse.Road)
}

func TestCollapseGenerator_Generate(t *testing.T) {
	g := &CollapseGenerator{Engine: collapse.NewEngine(collapse.WithSeed(8))}

	res, err := g.Generate(context.Background(), Request{Width: 6, Height: 4, Tiles: collapse.AllPossibleTiles()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Maze != nil {
		t.Error("collapse generator produced a maze")
	}
	if !res.Map.IsCollapsed() {
		t.Error("map is not collapsed")
	}

	if _, err := g.Generate(context.Background(), Request{Width: 0, Height: 4, Tiles: collapse.AllPossibleTiles()}); !errors.Is(err, collapse.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range Names() {
		g, err := New(name, collapse.NewEngine(), maze.NewGenerator(), DefaultMazeLimitOptions())
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}

		res, err := g.Generate(ctx, Request{Width: 6, Height: 6, Tiles: collapse.AllPossibleTiles()})
		if err != nil {
			t.Fatalf("%s: canceled Generate returned %v", name, err)
		}
		if !res.Canceled {
			t.Errorf("%s: result not marked canceled", name)
		}
	}
}
