package tagball

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TermConfig configures RunTerminal.
type TermConfig struct {
	// FPS is the frame rate. Zero means 30.
	FPS int
	// Debug logs per-frame stats to stderr.
	Debug bool
}

// RunTerminal shows a tag cloud for cfg in an initialized tcell screen and
// blocks until ctx is cancelled or the user quits with Esc, Ctrl-C or q.
// 'p' toggles pause. The caller owns the screen and must Fini it.
//
// Input events are collected on a separate goroutine but applied on the
// frame goroutine, so a pointer update is always complete before the next
// frame reads it.
func RunTerminal(ctx context.Context, screen tcell.Screen, cfg Config, nav Navigator, tc TermConfig) error {
	fps := tc.FPS
	if fps <= 0 {
		fps = 30
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	canvas := NewTermCanvas(screen, cfg.Background())
	cl, err := New(canvas, cfg, nav)
	if err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	defer cl.Stop()
	cl.Scene().SetDebugMode(tc.Debug)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go pollTerminal(ctx, screen, events)

	tr := &termInput{cloud: cl, canvas: canvas}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if tr.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if !cl.Tick() {
				return nil
			}
			canvas.Show()
		}
	}
}

// pollTerminal forwards screen events until ctx is done or the screen is
// finalized.
func pollTerminal(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// termInput translates tcell events into cloud input.
type termInput struct {
	cloud  *Cloud
	canvas *TermCanvas
	down   bool
}

// handle applies ev and reports whether the user asked to quit.
func (t *termInput) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'p':
				sc := t.cloud.Scene()
				if sc.State() == StatePaused {
					sc.Resume()
				} else {
					sc.Pause()
				}
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.canvas.CellCenter(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.down {
			if _, err := t.cloud.Click(x, y); err != nil {
				logf("click: %v", err)
			}
		} else {
			t.cloud.PointerMove(x, y)
		}
		t.down = pressed
	case *tcell.EventResize:
		t.canvas.Screen().Sync()
	}
	return false
}
