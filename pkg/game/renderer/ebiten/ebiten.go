package ebiten

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"tilecollapse/pkg/engine/collapse"
	"tilecollapse/pkg/engine/maze"
	"tilecollapse/pkg/game/generator"
	"tilecollapse/pkg/game/renderer"
	"tilecollapse/pkg/game/renderer/frame"
	"tilecollapse/pkg/game/setup"
)

// cancelTimeout bounds how long the window waits for a canceled run
const cancelTimeout = 5 * time.Second

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a viewer for run
func New(run *setup.Run) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		run:          run,
		session:      run.Session,
		speed:        run.Config.AnimationSpeed,
		ctx:          context.Background(),
	}
}

// Init sets up the window and loads the font
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("APP_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("Could not load font: %v", err)
		return
	}
	e.monoFontSource = src
}

// Run starts a generation and the Ebiten game loop. It returns when the
// window is closed, after canceling the generation if it still runs.
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	e.run.OnStage = func(stage generator.Stage, _ *generator.Result) {
		e.ShowMessage(e.run.StageMessage(stage))
	}
	e.start()

	err := ebiten.RunGame(e)

	cctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
	defer cancel()
	if cerr := e.cancel(cctx); cerr != nil {
		log.Printf("Generation did not stop: %v", cerr)
	}

	return err
}

// start runs a new generation on its own goroutine
func (e *EbitenRenderer) start() {
	e.tracker.Reset()
	e.session.ClearMessages()

	e.handleMutex.Lock()
	e.handle = e.run.Start(e.ctx, e.tracker.Handle)
	e.handleMutex.Unlock()
}

// cancel stops the running generation, if any, and waits for it
func (e *EbitenRenderer) cancel(ctx context.Context) error {
	e.handleMutex.Lock()
	h := e.handle
	e.handleMutex.Unlock()

	if h == nil {
		return nil
	}
	return h.Cancel(ctx)
}

// restart cancels the running generation and starts a new one
func (e *EbitenRenderer) restart() {
	ctx, cancel := context.WithTimeout(e.ctx, cancelTimeout)
	defer cancel()

	if err := e.cancel(ctx); err != nil {
		log.Printf("Could not restart: %v", err)
		return
	}
	e.start()
}

// setSpeed changes the animation speed of the running generation
func (e *EbitenRenderer) setSpeed(speed int) {
	e.run.SetSpeed(speed)
	e.speed = e.run.Config.AnimationSpeed
}

// capture takes a new frame of the session grids. The guard keeps the
// generation between two steps while the grids are copied.
func (e *EbitenRenderer) capture() frame.Frame {
	e.session.Guard.Lock()
	mz, m := e.session.Grids()
	f := frame.Capture(mz, m)
	e.session.Guard.Unlock()

	e.tracker.Apply(&f)

	e.snapshotMutex.Lock()
	e.snapshot = f
	e.snapshotMutex.Unlock()

	return f
}

// RenderMaze shows m until the next captured frame. The caller must keep m
// from changing during the call.
func (e *EbitenRenderer) RenderMaze(m *maze.Maze) {
	e.setSnapshot(frame.Capture(m, nil))
}

// RenderMap shows m until the next captured frame. The caller must keep m
// from changing during the call.
func (e *EbitenRenderer) RenderMap(m *collapse.Map) {
	e.setSnapshot(frame.Capture(nil, m))
}

func (e *EbitenRenderer) setSnapshot(f frame.Frame) {
	e.snapshotMutex.Lock()
	e.snapshot = f
	e.snapshotMutex.Unlock()
}

// StyleText returns text unchanged; the window colors text when drawing
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// ShowMessage adds a message to the panel below the grid
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.session.AddMessage(msg)
}
