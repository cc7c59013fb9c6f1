package tagball

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// TPS is the frame rate of the scene. Zero keeps Ebitengine's default.
	TPS int
	// Debug logs per-frame stats to stderr.
	Debug bool
	// Script, if set, drives synthetic input; the game exits when it is done.
	Script *TestRunner
}

// Game adapts a Cloud to ebiten.Game. Each Update forwards pointer input
// to the cloud and ticks the scene into the offscreen canvas; Draw presents
// that canvas. A paused scene therefore keeps showing its last frame.
type Game struct {
	cloud      *Cloud
	canvas     *ImageCanvas
	background Color
	showFPS    bool
	script     *TestRunner

	input       pointerInput
	cursorHover bool
}

// NewGame creates a Game for a cloud drawing into canvas.
func NewGame(cl *Cloud, canvas *ImageCanvas) *Game {
	return &Game{
		cloud:      cl,
		canvas:     canvas,
		background: cl.Config().Background(),
	}
}

// errDone ends RunGame without reporting an error.
var errDone = errors.New("tagball: done")

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		if g.script.Done() {
			return errDone
		}
		g.script.Step(g.cloud)
	} else {
		g.input.poll(g.cloud)
	}

	if !g.cloud.Tick() {
		return errDone
	}

	hover := g.cloud.AnyPaused()
	if hover != g.cursorHover {
		g.cursorHover = hover
		if hover {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background.NRGBA())
	screen.DrawImage(g.canvas.Image(), nil)
	g.canvas.FlushScreenshots()
	if g.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game. The surface has a fixed size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Size()
}

// Run opens a window showing a tag cloud for cfg and blocks until the
// window is closed or the scene stops.
func Run(cfg Config, rc RunConfig, nav Navigator) error {
	if rc.Width <= 0 {
		rc.Width = 480
	}
	if rc.Height <= 0 {
		rc.Height = rc.Width
	}
	canvas, err := NewImageCanvas(rc.Width, rc.Height, nil)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	cl, err := New(canvas, cfg, nav)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer cl.Stop()
	cl.Scene().SetDebugMode(rc.Debug)

	g := NewGame(cl, canvas)
	g.showFPS = rc.ShowFPS
	g.script = rc.Script

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	if rc.TPS > 0 {
		ebiten.SetTPS(rc.TPS)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errDone) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
