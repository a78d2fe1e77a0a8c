package collapse

import (
	"fmt"

	"tilecollapse/pkg/engine/world"
)

// Tile is one placeable tile. Direction records which rotation of a tilemap
// entry the tile is, and TilemapIndex points back at that entry (-1 for
// generated tiles).
type Tile struct {
	Top    Side
	Right  Side
	Bottom Side
	Left   Side

	TilemapIndex int
	Direction    world.Direction
}

// Side returns the side the tile exposes in the given direction
func (t Tile) Side(dir world.Direction) Side {
	switch dir {
	case world.Up:
		return t.Top
	case world.Right:
		return t.Right
	case world.Down:
		return t.Bottom
	case world.Left:
		return t.Left
	default:
		panic(fmt.Sprintf("collapse: invalid direction %d", dir))
	}
}

// HasSide reports whether any of the four sides equals s
func (t Tile) HasSide(s Side) bool {
	return t.Top == s || t.Right == s || t.Bottom == s || t.Left == s
}

// String returns a compact representation such as "Road/Field/Road/City"
func (t Tile) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", t.Top, t.Right, t.Bottom, t.Left)
}

// Rotations returns the four rotations of t in the order Up, Left, Down,
// Right. Every rotation keeps the tilemap index of t.
func (t Tile) Rotations() []Tile {
	return []Tile{
		{Top: t.Top, Right: t.Right, Bottom: t.Bottom, Left: t.Left, TilemapIndex: t.TilemapIndex, Direction: world.Up},
		{Top: t.Right, Right: t.Bottom, Bottom: t.Left, Left: t.Top, TilemapIndex: t.TilemapIndex, Direction: world.Left},
		{Top: t.Bottom, Right: t.Left, Bottom: t.Top, Left: t.Right, TilemapIndex: t.TilemapIndex, Direction: world.Down},
		{Top: t.Left, Right: t.Top, Bottom: t.Right, Left: t.Bottom, TilemapIndex: t.TilemapIndex, Direction: world.Right},
	}
}

// AllPossibleTiles returns every combination of four sides, facing Up and
// without a tilemap index
func AllPossibleTiles() []Tile {
	sides := AllSides()
	tiles := make([]Tile, 0, SideCount*SideCount*SideCount*SideCount)
	for _, top := range sides {
		for _, right := range sides {
			for _, bottom := range sides {
				for _, left := range sides {
					tiles = append(tiles, Tile{
						Top:          top,
						Right:        right,
						Bottom:       bottom,
						Left:         left,
						TilemapIndex: -1,
						Direction:    world.Up,
					})
				}
			}
		}
	}
	return tiles
}
