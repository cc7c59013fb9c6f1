package tagball

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsPanel is redrawn at most every fpsRefresh frames.
var (
	fpsPanel   *ebiten.Image
	fpsFrames  int
	fpsRefresh = 30
)

// drawFPS paints the current FPS and TPS in the top-left corner of screen.
func drawFPS(screen *ebiten.Image) {
	if fpsPanel == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		fpsPanel = ebiten.NewImage(100, 32)
		fpsFrames = fpsRefresh
	}
	fpsFrames++
	if fpsFrames >= fpsRefresh {
		fpsFrames = 0
		fpsPanel.Clear()
		// Semi-transparent background for readability
		fpsPanel.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(fpsPanel, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(fpsPanel, nil)
}
