package ebiten

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/world"
	"tilecollapse/pkg/game/renderer/frame"
	"tilecollapse/pkg/game/state"
)

// sideSquares places the four sides of a tile on a 3x3 grid of squares
var sideSquares = [4][2]int{
	world.Up:    {1, 0},
	world.Right: {2, 1},
	world.Down:  {1, 2},
	world.Left:  {0, 1},
}

// Draw renders one frame
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	f := e.currentFrame()

	gridHeight := max(0, e.windowHeight-panelHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), float32(gridHeight), colorMapBackground, false)

	if f.Total() > 0 {
		l := frame.Fit(f.Width, f.Height, e.windowWidth-2*mapMargin, gridHeight-2*mapMargin, minCellSize)
		l.OffsetX += mapMargin
		l.OffsetY += mapMargin

		e.drawCells(screen, &f, l)
		if f.Maze != nil {
			e.drawWalls(screen, &f, l)
		}
		e.drawPath(screen, &f, l)
		if f.HasHighlight {
			e.drawHighlight(screen, f.Highlight, l)
		}
	}

	e.drawPanel(screen, &f, gridHeight)
}

// currentFrame captures the session grids, or returns the frame last set by
// RenderMaze or RenderMap when the session holds none
func (e *EbitenRenderer) currentFrame() frame.Frame {
	mz, m := e.session.Grids()
	if mz == nil && m == nil {
		e.snapshotMutex.RLock()
		defer e.snapshotMutex.RUnlock()
		return e.snapshot
	}
	return e.capture()
}

func (e *EbitenRenderer) drawCells(screen *ebiten.Image, f *frame.Frame, l frame.Layout) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			px, py := l.Cell(x, y)
			size := float32(l.CellSize)

			switch {
			case f.Map != nil && f.Map[y][x].Collapsed:
				e.drawTile(screen, f.Map[y][x].Tile, float32(px), float32(py), size)
			case f.Map != nil:
				vector.DrawFilledRect(screen, float32(px), float32(py), size, size, entropyColor(f.Map[y][x].Entropy, f.MaxEntropy), false)
			case f.Maze[y][x].IsMaze:
				vector.DrawFilledRect(screen, float32(px), float32(py), size, size, colorMazeCell, false)
			default:
				vector.DrawFilledRect(screen, float32(px), float32(py), size, size, colorNonMaze, false)
			}
		}
	}
}

// drawTile fills a cell with the dominant side of the tile and paints each
// side in the middle of its edge
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, tile collapse.Tile, x, y, size float32) {
	vector.DrawFilledRect(screen, x, y, size, size, sideColors[frame.DominantSide(tile)], false)

	third := size / 3
	for _, dir := range world.AllDirections() {
		col, ok := sideColors[tile.Side(dir)]
		if !ok {
			continue
		}
		sq := sideSquares[dir]
		vector.DrawFilledRect(screen, x+float32(sq[0])*third, y+float32(sq[1])*third, third, third, col, false)
	}
}

// entropyColor shades uncollapsed cells: the fewer candidates are left the
// fainter the cell
func entropyColor(entropy, maxEntropy int) color.RGBA {
	ratio := 1.0
	if maxEntropy > 0 {
		ratio = float64(entropy) / float64(maxEntropy)
	}
	col := colorUncollapsed
	col.A = uint8(60 + 195*ratio)
	col.R = uint8(float64(col.R) * float64(col.A) / 255)
	col.G = uint8(float64(col.G) * float64(col.A) / 255)
	col.B = uint8(float64(col.B) * float64(col.A) / 255)
	return col
}

// drawWalls draws every closed wall once: the top and left walls of each
// cell plus the outer right and bottom borders
func (e *EbitenRenderer) drawWalls(screen *ebiten.Image, f *frame.Frame, l frame.Layout) {
	size := float32(l.CellSize)
	width := max(1, size*wallWidthRatio)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cell := f.Maze[y][x]
			px, py := l.Cell(x, y)
			fx, fy := float32(px), float32(py)

			if !cell.Open[world.Up] {
				vector.DrawFilledRect(screen, fx, fy, size, width, colorWall, false)
			}
			if !cell.Open[world.Left] {
				vector.DrawFilledRect(screen, fx, fy, width, size, colorWall, false)
			}
			if x == f.Width-1 && !cell.Open[world.Right] {
				vector.DrawFilledRect(screen, fx+size-width, fy, width, size, colorWall, false)
			}
			if y == f.Height-1 && !cell.Open[world.Down] {
				vector.DrawFilledRect(screen, fx, fy+size-width, size, width, colorWall, false)
			}
		}
	}
}

// drawPath marks the cells of the random walk in progress
func (e *EbitenRenderer) drawPath(screen *ebiten.Image, f *frame.Frame, l frame.Layout) {
	size := float32(l.CellSize)
	inset := size / 4

	for _, p := range f.Path {
		if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
			continue
		}
		px, py := l.Cell(p.X, p.Y)
		vector.DrawFilledRect(screen, float32(px)+inset, float32(py)+inset, size-2*inset, size-2*inset, colorPath, false)
	}
}

// drawHighlight outlines the cell the generation is working on
func (e *EbitenRenderer) drawHighlight(screen *ebiten.Image, p world.Point, l frame.Layout) {
	px, py := l.Cell(p.X, p.Y)
	x, y := float32(px), float32(py)
	size := float32(l.CellSize)
	width := max(2, size*wallWidthRatio)

	vector.DrawFilledRect(screen, x, y, size, width, colorHighlight, false)
	vector.DrawFilledRect(screen, x, y+size-width, size, width, colorHighlight, false)
	vector.DrawFilledRect(screen, x, y, width, size, colorHighlight, false)
	vector.DrawFilledRect(screen, x+size-width, y, width, size, colorHighlight, false)
}

// drawPanel draws the status line, the key help and the latest messages
// below the grid
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, f *frame.Frame, top int) {
	vector.DrawFilledRect(screen, 0, float32(top), float32(e.windowWidth), panelHeight, colorPanelBackground, false)

	face := e.getMonoFontFace()
	if face == nil {
		return
	}

	lineHeight := int(face.Size) + 4
	x := mapMargin
	y := top + 4

	status, statusColor := e.statusText()
	parts := []string{
		fmt.Sprintf(gotext.Get("VIEWER_SPEED"), e.speed),
	}
	if status != "" {
		parts = append([]string{status}, parts...)
	}
	if f.Map != nil {
		parts = append(parts, fmt.Sprintf("%d/%d", f.Collapsed, f.Total()))
	}
	if f.Backtracks > 0 {
		parts = append(parts, fmt.Sprintf(gotext.Get("VIEWER_BACKTRACKS"), f.Backtracks))
	}
	if f.Progress > 0 && f.Progress < 1 {
		parts = append(parts, fmt.Sprintf("%3.0f%%", f.Progress*100))
	}

	e.drawText(screen, strings.Join(parts, "   "), face, x, y, statusColor)
	y += lineHeight
	e.drawText(screen, gotext.Get("VIEWER_HELP"), face, x, y, colorSubtle)
	y += lineHeight

	messages := e.session.Messages()
	visible := max(0, (top+panelHeight-y)/lineHeight)
	if len(messages) > visible {
		messages = messages[len(messages)-visible:]
	}
	for _, msg := range messages {
		e.drawText(screen, msg, face, x, y, colorText)
		y += lineHeight
	}
}

// statusText describes the session status
func (e *EbitenRenderer) statusText() (string, color.Color) {
	status, err := e.session.Status()
	switch status {
	case state.StatusRunning:
		return gotext.Get("VIEWER_RUNNING"), colorText
	case state.StatusDone:
		return fmt.Sprintf(gotext.Get("RUN_DONE"), e.session.Elapsed().Round(time.Millisecond)), colorText
	case state.StatusCanceled:
		return gotext.Get("RUN_CANCELED"), colorDenied
	case state.StatusFailed:
		return fmt.Sprintf(gotext.Get("RUN_FAILED"), err), colorDenied
	default:
		return "", colorText
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
