// Package ebiten provides an Ebiten-based window that animates a running
// generation.
package ebiten

import (
	"image/color"

	"tilecollapse/pkg/engine/collapse"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorNonMaze         = color.RGBA{60, 60, 80, 255}    // Cells outside the maze
	colorMazeCell        = color.RGBA{100, 100, 120, 255} // Carved cells
	colorPath            = color.RGBA{255, 200, 100, 160} // Random walk
	colorHighlight       = color.RGBA{0, 255, 0, 255}     // Bright green
	colorUncollapsed     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// sideColors maps every side to its fill color
var sideColors = map[collapse.Side]color.RGBA{
	collapse.Water: {40, 90, 200, 255},
	collapse.Field: {70, 160, 60, 255},
	collapse.Road:  {200, 180, 120, 255},
	collapse.City:  {170, 60, 50, 255},
}

// Sizes in pixels
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720
	minCellSize         = 6
	panelHeight         = 96
	mapMargin           = 12
	baseFontSize        = 14
	wallWidthRatio      = 0.08
)

// Animation speed change per key press
const speedStep = 50
