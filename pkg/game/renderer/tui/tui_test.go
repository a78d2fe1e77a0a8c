package tui

import (
	"bytes"
	"strings"
	"testing"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/game/renderer"
)

func TestGridSizeFor(t *testing.T) {
	tests := []struct {
		cols, rows    int
		width, height int
	}{
		{80, 24, 9, 5},
		{161, 41, 20, 10},
		{0, 0, 1, 1},
		{8, 4, 1, 1},
	}

	for _, tt := range tests {
		w, h := GridSizeFor(tt.cols, tt.rows)
		if w != tt.width || h != tt.height {
			t.Errorf("GridSizeFor(%d, %d) = %d, %d, want %d, %d", tt.cols, tt.rows, w, h, tt.width, tt.height)
		}
	}
}

func TestFormatText(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	r.Init()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"HL{Map} 3 x 2", "Map 3 x 2"},
		{"SIDE{Water} SIDE{city}", "W C"},
		{"SIDE{Lava}", "Lava"},
		{"NOPE{x}", "ERROR, function not found: NOPE -> x"},
	}

	for _, tt := range tests {
		if got := r.FormatText(tt.in); got != tt.want {
			t.Errorf("FormatText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTextBeforeInit(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	if got := r.FormatText("HL{x}"); got != "HL{x}" {
		t.Errorf("FormatText() before Init = %q, want the message unchanged", got)
	}
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false)
	r.Init()

	mz, err := maze.New(2, 2)
	if err != nil {
		t.Fatalf("maze.New() error = %v", err)
	}
	m, err := collapse.NewMap(3, 2, collapse.AllPossibleTiles())
	if err != nil {
		t.Fatalf("collapse.NewMap() error = %v", err)
	}

	r.RenderMaze(mz)
	r.RenderMap(m)
	r.RenderMaze(nil)
	r.RenderMap(nil)

	got := out.String()
	for _, want := range []string{
		renderer.FormatMaze(mz, renderer.Plain),
		renderer.FormatMap(m, renderer.Plain),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing\n%s\ngot\n%s", want, got)
		}
	}
	if n := strings.Count(got, "┏"); n != 2 {
		t.Errorf("output has %d grids, want 2", n)
	}
}

func TestStyleTextWithoutColor(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	r.Init()
	if got := r.StyleText("W", renderer.StyleWater); got != "W" {
		t.Errorf("StyleText() = %q, want %q", got, "W")
	}
}
