package tagball

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerSample is one frame of raw pointer input in surface coordinates.
type pointerSample struct {
	x, y    int
	clicked bool // primary button or a touch went down this frame
	touch   bool
}

// readPointer samples Ebitengine input. The first active touch takes
// precedence over the mouse. buf is reused for touch IDs.
func readPointer(buf []ebiten.TouchID) (pointerSample, []ebiten.TouchID) {
	buf = ebiten.AppendTouchIDs(buf[:0])
	if len(buf) > 0 {
		tid := buf[0]
		x, y := ebiten.TouchPosition(tid)
		return pointerSample{
			x:       x,
			y:       y,
			clicked: inpututil.TouchPressDuration(tid) == 1,
			touch:   true,
		}, buf
	}
	x, y := ebiten.CursorPosition()
	return pointerSample{
		x:       x,
		y:       y,
		clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}, buf
}

// pointerInput turns per-frame samples into cloud input. Moves are only
// reported when the position changes, as with DOM mousemove events.
type pointerInput struct {
	lastX, lastY int
	seen         bool
	touching     bool
	touchIDs     []ebiten.TouchID
}

// apply forwards s to cl.
func (p *pointerInput) apply(cl *Cloud, s pointerSample) {
	if p.touching && !s.touch {
		// A touch ended. The mouse cursor did not move, so report nothing
		// until it does.
		p.touching = false
		p.lastX, p.lastY = s.x, s.y
		return
	}
	p.touching = s.touch

	// Ebitengine reports (0, 0) before the cursor ever entered the window;
	// treat that as no movement yet.
	if !p.seen && !s.touch && !s.clicked && s.x == 0 && s.y == 0 {
		return
	}
	if !p.seen || s.x != p.lastX || s.y != p.lastY {
		p.seen = true
		p.lastX, p.lastY = s.x, s.y
		cl.PointerMove(float64(s.x), float64(s.y))
	}
	if s.clicked {
		if _, err := cl.Click(float64(s.x), float64(s.y)); err != nil {
			logf("click: %v", err)
		}
	}
}

// poll samples real input and applies it.
func (p *pointerInput) poll(cl *Cloud) {
	var s pointerSample
	s, p.touchIDs = readPointer(p.touchIDs)
	p.apply(cl, s)
}
