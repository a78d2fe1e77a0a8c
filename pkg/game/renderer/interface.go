package renderer

import (
	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWater
	StyleField
	StyleRoad
	StyleCity
	StyleWall
	StyleNonMaze
	StyleUncollapsed
	StyleSubtle
	StyleHighlight
)

// Renderer defines the interface for generation rendering backends.
// Implementations include the terminal printer and the Ebiten viewer.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderMaze draws the walls of a maze
	RenderMaze(m *maze.Maze)

	// RenderMap draws a tile map, collapsed or not
	RenderMap(m *collapse.Map)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderMaze renders a maze with the current renderer
func RenderMaze(m *maze.Maze) {
	if Current != nil {
		Current.RenderMaze(m)
	}
}

// RenderMap renders a map with the current renderer
func RenderMap(m *collapse.Map) {
	if Current != nil {
		Current.RenderMap(m)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
