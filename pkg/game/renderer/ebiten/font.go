package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getFontSize returns the font size for panel text, scaled to the window
func (e *EbitenRenderer) getFontSize() float64 {
	size := baseFontSize * float64(e.windowHeight) / defaultWindowHeight
	if size < 10 {
		size = 10
	}
	return size
}

// getMonoFontFace returns a cached monospace font face
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.monoFontSource == nil {
		return nil
	}
	size := e.getFontSize()
	if e.cachedFace == nil || e.cachedFace.Size != size {
		e.cachedFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedFace
}
