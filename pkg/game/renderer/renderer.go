// Package renderer draws maps and mazes as box-drawing text and defines the
// interface implemented by the terminal and graphical backends.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/world"
)

// Icon constants
const (
	IconNonMaze   = "XX"
	IconCollapsed = "#"
	IconUnknown   = "-"
)

// Box-drawing pieces
const (
	mapCellRule  = "━━━━━━━"
	mazeCellRule = "━━━━━━"
	mazeCellGap  = "      "
)

// junctionOpen and junctionWall are indexed by left<<2 | top<<1 | right,
// where a set bit means a closed wall on that arm; the choice between the
// two tables is made by the bottom arm.
var (
	junctionOpen = [8]string{"▪", "╺", "╹", "┗", "╸", "━", "┛", "┻"}
	junctionWall = [8]string{"╻", "┏", "┃", "┣", "┓", "┳", "┫", "╋"}
)

// Styler styles a piece of text
type Styler func(text string, style TextStyle) string

// Plain returns text unchanged
func Plain(text string, _ TextStyle) string {
	return text
}

var (
	ColorWater       color.Style
	ColorField       color.Style
	ColorRoad        color.Style
	ColorCity        color.Style
	ColorWall        color.Style
	ColorNonMaze     color.Style
	ColorUncollapsed color.Style
	ColorSubtle      color.Style
	ColorHighlight   color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorWater = color.Style{color.FgBlue, color.OpBold}
	ColorField = color.Style{color.FgGreen}
	ColorRoad = color.Style{color.FgYellow}
	ColorCity = color.Style{color.FgRed, color.OpBold}
	ColorWall = color.Style{color.FgGray}
	ColorNonMaze = color.Style{color.FgMagenta}
	ColorUncollapsed = color.Style{color.FgGray, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
	ColorHighlight = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
}

// Colored styles text with the gookit color style for the given TextStyle
func Colored(text string, style TextStyle) string {
	switch style {
	case StyleWater:
		return ColorWater.Sprint(text)
	case StyleField:
		return ColorField.Sprint(text)
	case StyleRoad:
		return ColorRoad.Sprint(text)
	case StyleCity:
		return ColorCity.Sprint(text)
	case StyleWall:
		return ColorWall.Sprint(text)
	case StyleNonMaze:
		return ColorNonMaze.Sprint(text)
	case StyleUncollapsed:
		return ColorUncollapsed.Sprint(text)
	case StyleSubtle:
		return ColorSubtle.Sprint(text)
	case StyleHighlight:
		return ColorHighlight.Sprint(text)
	default:
		return text
	}
}

// SideGlyph returns the one letter icon of a side
func SideGlyph(s collapse.Side) string {
	switch s {
	case collapse.Water:
		return "W"
	case collapse.Field:
		return "F"
	case collapse.Road:
		return "R"
	case collapse.City:
		return "C"
	default:
		return "?"
	}
}

// SideStyle returns the text style used for a side
func SideStyle(s collapse.Side) TextStyle {
	switch s {
	case collapse.Water:
		return StyleWater
	case collapse.Field:
		return StyleField
	case collapse.Road:
		return StyleRoad
	case collapse.City:
		return StyleCity
	default:
		return StyleNormal
	}
}

func styleOrPlain(style Styler) Styler {
	if style == nil {
		return Plain
	}
	return style
}

// FormatMap returns the box-drawing representation of a map. Every cell is
// three lines high: collapsed cells show the sides of their tile around a
// '#', the others show how many tiles they may still become.
func FormatMap(m *collapse.Map, style Styler) string {
	style = styleOrPlain(style)
	var sb strings.Builder

	rule := func(left, middle, right string) {
		sb.WriteString(left)
		for x := 0; x < m.Width; x++ {
			sb.WriteString(mapCellRule)
			if x < m.Width-1 {
				sb.WriteString(middle)
			}
		}
		sb.WriteString(right)
	}

	rule("┏", "┳", "┓")
	for y := 0; y < m.Height; y++ {
		for line := 0; line < 3; line++ {
			sb.WriteString("\n┃")
			for x := 0; x < m.Width; x++ {
				sb.WriteString(formatMapCell(m.Cells[y][x], line, style))
				sb.WriteString("┃")
			}
		}
		sb.WriteString("\n")
		if y < m.Height-1 {
			rule("┣", "╋", "┫")
		} else {
			rule("┗", "┻", "┛")
		}
	}

	return sb.String()
}

func formatMapCell(cell *collapse.MapCell, line int, style Styler) string {
	tile, ok := cell.Tile()
	if !ok {
		if line == 1 {
			count := fmt.Sprintf("%-3d", cell.Entropy())
			return IconUnknown + " " + style(count, StyleUncollapsed) + " " + IconUnknown
		}
		return "  " + IconUnknown + "    "
	}

	glyph := func(dir world.Direction) string {
		s := tile.Side(dir)
		return style(SideGlyph(s), SideStyle(s))
	}

	switch line {
	case 0:
		return "  " + glyph(world.Up) + "    "
	case 1:
		return glyph(world.Left) + " " + IconCollapsed + "   " + glyph(world.Right)
	default:
		return "  " + glyph(world.Down) + "    "
	}
}

// FormatMaze returns the box-drawing representation of a maze. Cells that
// are not part of the maze are marked with XX; the corners between four
// cells pick the glyph that joins the walls meeting there.
func FormatMaze(m *maze.Maze, style Styler) string {
	style = styleOrPlain(style)
	var sb strings.Builder

	// top border: the walls between the first row's cells join it
	sb.WriteString("┏")
	for x := 0; x < m.Width; x++ {
		sb.WriteString(mazeCellRule)
		switch {
		case x == m.Width-1:
			sb.WriteString("┓")
		case m.IsOpen(x, 0, world.Right):
			sb.WriteString("━")
		default:
			sb.WriteString("┳")
		}
	}

	for y := 0; y < m.Height; y++ {
		for line := 0; line < 3; line++ {
			sb.WriteString("\n┃")
			for x := 0; x < m.Width; x++ {
				if line == 1 && !m.Cells[y][x].IsMaze {
					sb.WriteString("  " + style(IconNonMaze, StyleNonMaze) + "  ")
				} else {
					sb.WriteString(mazeCellGap)
				}
				if x < m.Width-1 && m.IsOpen(x, y, world.Right) {
					sb.WriteString(" ")
				} else {
					sb.WriteString("┃")
				}
			}
		}
		if y < m.Height-1 {
			sb.WriteString("\n")
			sb.WriteString(formatMazeRule(m, y))
		}
	}

	sb.WriteString("\n┗")
	for x := 0; x < m.Width; x++ {
		sb.WriteString(mazeCellRule)
		switch {
		case x == m.Width-1:
			sb.WriteString("┛")
		case m.IsOpen(x, m.Height-1, world.Right):
			sb.WriteString("━")
		default:
			sb.WriteString("┻")
		}
	}

	return sb.String()
}

// formatMazeRule draws the line between row y and row y+1
func formatMazeRule(m *maze.Maze, y int) string {
	var sb strings.Builder

	if m.IsOpen(0, y, world.Down) {
		sb.WriteString("┃")
	} else {
		sb.WriteString("┣")
	}

	for x := 0; x < m.Width; x++ {
		bottomOpen := m.IsOpen(x, y, world.Down)
		if bottomOpen {
			sb.WriteString(mazeCellGap)
		} else {
			sb.WriteString(mazeCellRule)
		}

		if x == m.Width-1 {
			if bottomOpen {
				sb.WriteString("┃")
			} else {
				sb.WriteString("┫")
			}
			continue
		}

		sb.WriteString(junction(
			!bottomOpen,
			!m.IsOpen(x, y, world.Right),
			!m.IsOpen(x+1, y, world.Down),
			!m.IsOpen(x, y+1, world.Right),
		))
	}

	return sb.String()
}

// junction returns the glyph joining the four wall arms around a corner
func junction(left, top, right, bottom bool) string {
	idx := 0
	if left {
		idx |= 4
	}
	if top {
		idx |= 2
	}
	if right {
		idx |= 1
	}
	if bottom {
		return junctionWall[idx]
	}
	return junctionOpen[idx]
}

// PrintMap prints a map to stdout using the given styler
func PrintMap(m *collapse.Map, style Styler) {
	fmt.Println(FormatMap(m, style))
}

// PrintMaze prints a maze to stdout using the given styler
func PrintMaze(m *maze.Maze, style Styler) {
	fmt.Println(FormatMaze(m, style))
}
