package ebiten

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"tilecollapse/pkg/game/renderer/frame"
	"tilecollapse/pkg/game/setup"
	"tilecollapse/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based generation viewer. The generation runs
// on its own goroutine; Draw only reads the grids while holding the session
// guard and otherwise redraws the last captured frame.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource
	cachedFace     *text.GoTextFace

	run     *setup.Run
	session *state.Session
	tracker frame.Tracker

	// handle of the running generation, nil when idle
	handleMutex sync.Mutex
	handle      *setup.Handle
	ctx         context.Context

	// last captured frame
	snapshotMutex sync.RWMutex
	snapshot      frame.Frame

	speed int
}
