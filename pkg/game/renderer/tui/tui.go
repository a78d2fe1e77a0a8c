package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/engine/terminal"
	"tilecollapse/pkg/game/renderer"
)

// Space taken on screen by one map cell and by the borders
const (
	CellCols   = 8
	CellRows   = 4
	BorderCols = 1
	BorderRows = 1
)

// dynamicGet looks up translation keys found in markup at runtime. As a
// variable it is not checked by vet as a format string wrapper.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	useColor bool

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out. Colors are only used when
// useColor is set.
func New(out io.Writer, useColor bool) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, useColor: useColor}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()
	if t.useColor {
		color.Enable = true
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !terminal.IsTerminal() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.useColor {
		return text
	}
	return renderer.Colored(text, style)
}

// FormatText applies the markup system to a message. GT{key} is
// translated, SIDE{name} becomes a side glyph and HL{text} is highlighted.
func (t *TUIRenderer) FormatText(msg string) string {
	ret := msg

	if t.regexpStringFunctions == nil {
		return ret
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "SIDE":
			side, err := collapse.ParseSide(operand)
			if err != nil {
				val = operand
				break
			}
			val = t.StyleText(renderer.SideGlyph(side), renderer.SideStyle(side))
		case "HL":
			val = t.StyleText(operand, renderer.StyleHighlight)
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderMaze prints the maze
func (t *TUIRenderer) RenderMaze(m *maze.Maze) {
	if m == nil {
		return
	}
	t.ShowMessage(t.FormatText(fmt.Sprintf(gotext.Get("MAZE_HEADER"), m.Width, m.Height)))
	fmt.Fprintln(t.out, renderer.FormatMaze(m, t.StyleText))
}

// RenderMap prints the map
func (t *TUIRenderer) RenderMap(m *collapse.Map) {
	if m == nil {
		return
	}
	t.ShowMessage(t.FormatText(fmt.Sprintf(gotext.Get("MAP_HEADER"), m.Width, m.Height)))
	fmt.Fprintln(t.out, renderer.FormatMap(m, t.StyleText))
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// MaxGridSize returns the largest grid that can be printed without wrapping
// on the current terminal
func (t *TUIRenderer) MaxGridSize() (width, height int) {
	cols, rows := terminal.GetSize()
	return GridSizeFor(cols, rows)
}

// GridSizeFor returns the largest grid whose rendering fits in cols x rows
func GridSizeFor(cols, rows int) (width, height int) {
	width = (cols - BorderCols) / CellCols
	height = (rows - BorderRows) / CellRows
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
