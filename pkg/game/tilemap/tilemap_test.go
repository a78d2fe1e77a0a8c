package tilemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/world"
)

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"zero size", `{"width": 0, "height": 0, "tileSize": 1, "tiles": []}`},
		{"zero height", `{"width": 1, "height": 0, "tileSize": 1, "tiles": []}`},
		{"unknown side", `{"width": 1, "height": 1, "tileSize": 1, "tiles": [
			{"top": "Roadd", "right": "Roadd", "bottom": "Roadd", "left": "Roadd"}]}`},
		{"one bad tile", `{"width": 1, "height": 1, "tileSize": 1, "tiles": [
			{"top": "Road", "right": "Field", "bottom": "Field", "left": "City"},
			{"top": "Road", "right": "ASDF", "bottom": "Road", "left": "Road"}]}`},
		{"unknown field", `{"width": 1, "height": 1, "tileSize": 1, "extra": true, "tiles": []}`},
		{"unknown tile field", `{"width": 1, "height": 1, "tileSize": 1, "tiles": [
			{"top": "Road", "right": "Road", "bottom": "Road", "left": "Road", "center": "Road"}]}`},
		{"not json", `width: 1`},
		{"wrong type", `{"width": "1", "height": 1, "tileSize": 1, "tiles": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrInvalidTilemap)
		})
	}
}

func TestParseReportsEverySide(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"width": 1, "height": 1, "tileSize": 1, "tiles": [
		{"top": "Nope", "right": "Road", "bottom": "Road", "left": "Wrong"}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, collapse.ErrUnknownSide)
	assert.Contains(t, err.Error(), "tiles[0].top")
	assert.Contains(t, err.Error(), "tiles[0].left")
}

func TestParse(t *testing.T) {
	data := `{
		"width": 2,
		"height": 10,
		"tileSize": 1,
		"tiles": [
			{"top": "Road", "right": "Field", "bottom": "Field", "left": "City"},
			{"top": "Road", "right": "City", "bottom": "Road", "left": "Road"},
			{"top": "Road", "right": "City", "bottom": "Road", "left": "Road"},
			{"top": "Road", "right": "City", "bottom": "Road", "left": "Road"},
			{"top": "Road", "right": "City", "bottom": "Road", "left": "Road"}
		]
	}`

	tm, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, tm.Width)
	assert.Equal(t, 10, tm.Height)
	assert.Equal(t, 1, tm.TileSize)
	require.Len(t, tm.Entries, 5)

	assert.Equal(t, Entry{X: 0, Y: 0, Top: collapse.Road, Right: collapse.Field, Bottom: collapse.Field, Left: collapse.City, TilemapIndex: 0}, tm.Entries[0])
	assert.Equal(t, Entry{X: 1, Y: 0, Top: collapse.Road, Right: collapse.City, Bottom: collapse.Road, Left: collapse.Road, TilemapIndex: 1}, tm.Entries[1])
	assert.Equal(t, Entry{X: 0, Y: 2, Top: collapse.Road, Right: collapse.City, Bottom: collapse.Road, Left: collapse.Road, TilemapIndex: 4}, tm.Entries[4])
}

func TestTiles(t *testing.T) {
	tm := &Tilemap{
		Width:    2,
		Height:   2,
		TileSize: 1,
		Entries: []Entry{
			{X: 0, Y: 0, Top: collapse.Road, Right: collapse.Road, Bottom: collapse.Road, Left: collapse.Road, TilemapIndex: 0},
			{X: 1, Y: 0, Top: collapse.Road, Right: collapse.Field, Bottom: collapse.Field, Left: collapse.Road, TilemapIndex: 1},
		},
	}

	tiles := tm.Tiles()
	require.Len(t, tiles, 8)

	directions := []world.Direction{world.Up, world.Left, world.Down, world.Right}
	for i, tile := range tiles[:4] {
		assert.Equal(t, collapse.Tile{Top: collapse.Road, Right: collapse.Road, Bottom: collapse.Road, Left: collapse.Road, TilemapIndex: 0, Direction: directions[i]}, tile)
	}

	assert.Equal(t, []collapse.Tile{
		{Top: collapse.Road, Right: collapse.Field, Bottom: collapse.Field, Left: collapse.Road, TilemapIndex: 1, Direction: world.Up},
		{Top: collapse.Field, Right: collapse.Field, Bottom: collapse.Road, Left: collapse.Road, TilemapIndex: 1, Direction: world.Left},
		{Top: collapse.Field, Right: collapse.Road, Bottom: collapse.Road, Left: collapse.Field, TilemapIndex: 1, Direction: world.Down},
		{Top: collapse.Road, Right: collapse.Road, Bottom: collapse.Field, Left: collapse.Field, TilemapIndex: 1, Direction: world.Right},
	}, tiles[4:])
}

func TestDefault(t *testing.T) {
	tm := Default()
	require.NotEmpty(t, tm.Entries)
	assert.Len(t, tm.Tiles(), 4*len(tm.Entries))

	hasRoad := false
	for _, tile := range tm.Tiles() {
		if tile.HasSide(collapse.Road) {
			hasRoad = true
			break
		}
	}
	assert.True(t, hasRoad)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilemap.json")
	require.NoError(t, os.WriteFile(path, defaultTilemap, 0o600))

	tm, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), tm)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultCoversEverySideCombination(t *testing.T) {
	sides := []collapse.Side{collapse.Water, collapse.Field, collapse.Road}

	type edges struct{ top, right, bottom, left collapse.Side }
	have := make(map[edges]bool)
	for _, tile := range Default().Tiles() {
		have[edges{tile.Top, tile.Right, tile.Bottom, tile.Left}] = true
	}

	for _, top := range sides {
		for _, right := range sides {
			for _, bottom := range sides {
				for _, left := range sides {
					assert.True(t, have[edges{top, right, bottom, left}], "missing %v %v %v %v", top, right, bottom, left)
				}
			}
		}
	}
	assert.Len(t, have, len(sides)*len(sides)*len(sides)*len(sides))
}
