package ebiten

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update handles keyboard input. Esc cancels the generation, R restarts it,
// +/- change the animation speed and Q closes the window.
func (e *EbitenRenderer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ctx, cancel := context.WithTimeout(e.ctx, cancelTimeout)
		defer cancel()
		if err := e.cancel(ctx); err != nil {
			log.Printf("Could not cancel: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setSpeed(e.speed + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setSpeed(e.speed - speedStep)
	}

	return nil
}

// Layout tracks the window size and uses it as the logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.cachedFace = nil
	}
	return outsideWidth, outsideHeight
}
