// Package tilemap loads tile definitions from tilemap JSON files and expands
// them into the rotated tiles the collapse engine works with.
package tilemap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/world"
)

// ErrInvalidTilemap is returned for tilemap data that does not describe a tilemap
var ErrInvalidTilemap = errors.New("tilemap: invalid tilemap data")

//go:embed default_tilemap.json
var defaultTilemap []byte

// Entry is one tile of the tilemap image. X and Y are its position on the
// image in tiles.
type Entry struct {
	X int
	Y int

	Top    collapse.Side
	Right  collapse.Side
	Bottom collapse.Side
	Left   collapse.Side

	TilemapIndex int
}

// Tilemap describes the tiles of a tilemap image
type Tilemap struct {
	Width    int
	Height   int
	TileSize int
	Entries  []Entry
}

type fileTile struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

type file struct {
	Width    *int       `json:"width"`
	Height   *int       `json:"height"`
	TileSize *int       `json:"tileSize"`
	Tiles    []fileTile `json:"tiles"`
}

// Parse reads tilemap JSON from r. Unknown fields, missing or non-positive
// dimensions and unknown side names are rejected; every problem found is
// reported.
func Parse(r io.Reader) (*Tilemap, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTilemap, err)
	}

	var errs []error
	checkPositive := func(name string, v *int) int {
		switch {
		case v == nil:
			errs = append(errs, fmt.Errorf("%s is missing", name))
			return 0
		case *v <= 0:
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, *v))
		}
		return *v
	}

	t := &Tilemap{
		Width:    checkPositive("width", f.Width),
		Height:   checkPositive("height", f.Height),
		TileSize: checkPositive("tileSize", f.TileSize),
	}
	if f.Tiles == nil {
		errs = append(errs, errors.New("tiles is missing"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTilemap, errors.Join(errs...))
	}

	t.Entries = make([]Entry, 0, len(f.Tiles))
	for i, ft := range f.Tiles {
		entry := Entry{
			X:            i % t.Width,
			Y:            i / t.Width,
			TilemapIndex: i,
		}
		for _, side := range []struct {
			name  string
			value string
			dst   *collapse.Side
		}{
			{"top", ft.Top, &entry.Top},
			{"right", ft.Right, &entry.Right},
			{"bottom", ft.Bottom, &entry.Bottom},
			{"left", ft.Left, &entry.Left},
		} {
			s, err := collapse.ParseSide(side.value)
			if err != nil {
				errs = append(errs, fmt.Errorf("tiles[%d].%s: %w", i, side.name, err))
				continue
			}
			*side.dst = s
		}
		t.Entries = append(t.Entries, entry)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTilemap, errors.Join(errs...))
	}

	return t, nil
}

// Load parses the tilemap JSON file at path
func Load(path string) (*Tilemap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Default returns the tilemap built into the binary
func Default() *Tilemap {
	t, err := Parse(bytes.NewReader(defaultTilemap))
	if err != nil {
		panic(err)
	}
	return t
}

// Tiles expands every entry into its four rotations, keeping the tilemap
// index of the entry
func (t *Tilemap) Tiles() []collapse.Tile {
	tiles := make([]collapse.Tile, 0, 4*len(t.Entries))
	for _, e := range t.Entries {
		tile := collapse.Tile{
			Top:          e.Top,
			Right:        e.Right,
			Bottom:       e.Bottom,
			Left:         e.Left,
			TilemapIndex: e.TilemapIndex,
			Direction:    world.Up,
		}
		tiles = append(tiles, tile.Rotations()...)
	}
	return tiles
}
