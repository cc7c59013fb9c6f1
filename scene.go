package tagball

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrConfiguration is returned when a component is constructed without its
// required configuration. It is never recovered from.
var ErrConfiguration = errors.New("tagball: invalid configuration")

// State is the lifecycle state of a Scene.
type State uint8

const (
	StateStopped State = iota // no frames are drawn; initial state
	StateRunning              // every tick clears the surface and draws all items
	StatePaused               // ticks keep arriving but the last frame stays on screen
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// SceneConfig is the configuration a Scene is built from.
type SceneConfig struct {
	// Items must be non-nil; an empty slice is a valid, empty scene.
	Items []*Item
	// Origin is the surface point the sphere is centered on.
	Origin Vec2
}

// Scene owns the drawing surface, the items and the pointer reading, and
// drives the per-frame draw. The host calls Tick once per frame from a
// single goroutine.
type Scene struct {
	canvas        Canvas
	width, height float64
	origin        Vec2
	items         []*Item
	pointer       PointerState

	state  State
	ctx    context.Context
	cancel context.CancelFunc
	saved  bool
	frame  uint64
	debug  bool
}

// NewScene creates a stopped scene drawing to c.
func NewScene(c Canvas, cfg SceneConfig) (*Scene, error) {
	if c == nil {
		return nil, fmt.Errorf("new scene: nil canvas: %w", ErrConfiguration)
	}
	if cfg.Items == nil {
		return nil, fmt.Errorf("new scene: missing items: %w", ErrConfiguration)
	}
	w, h := c.Size()
	s := &Scene{
		canvas:  c,
		width:   float64(w),
		height:  float64(h),
		origin:  cfg.Origin,
		items:   make([]*Item, 0, len(cfg.Items)),
		pointer: initialPointerState(float64(w), float64(h)),
	}
	for _, it := range cfg.Items {
		s.AddItem(it)
	}
	return s, nil
}

// AddItem appends it to the draw order. Nil items are ignored.
func (s *Scene) AddItem(it *Item) {
	if it == nil {
		return
	}
	s.items = append(s.items, it)
}

// Items returns the items in draw order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Items() []*Item { return s.items }

// Pointer returns the current pointer reading.
func (s *Scene) Pointer() PointerState { return s.pointer }

// SetPointerPolar updates the rotation part of the pointer reading.
func (s *Scene) SetPointerPolar(p PolarPayload) {
	s.pointer.Angle = p.Angle
	s.pointer.Radius = p.Radius
}

// SetPointerCartesian updates the position part of the pointer reading.
func (s *Scene) SetPointerCartesian(p CartesianPayload) {
	s.pointer.X = p.X
	s.pointer.Y = p.Y
}

// State returns the lifecycle state.
func (s *Scene) State() State { return s.state }
func (s *Scene) Origin() Vec2 { return s.origin }
func (s *Scene) Frame() uint64 { return s.frame }
func (s *Scene) Canvas() Canvas { return s.canvas }
func (s *Scene) Size() (w, h float64) { return s.width, s.height }

// Start begins drawing on subsequent ticks. It is idempotent while running
// and resumes a paused scene. Cancelling ctx stops the scene at the next
// tick.
func (s *Scene) Start(ctx context.Context) {
	switch s.state {
	case StateRunning:
		return
	case StatePaused:
		s.state = StateRunning
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.canvas.Save()
	s.canvas.Translate(s.origin.X, s.origin.Y)
	s.saved = true
	s.state = StateRunning
}

// Pause freezes the displayed frame and publishes EventPause to every item.
func (s *Scene) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
	for _, it := range s.items {
		it.Events.Publish(EventPause, nil)
	}
}

// Resume continues a paused scene.
func (s *Scene) Resume() {
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// Stop ends the frame loop and restores the canvas transform saved by
// Start. A tick already in progress completes.
func (s *Scene) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = StateStopped
	if s.saved {
		s.canvas.Restore()
		s.saved = false
	}
}

// Tick is the per-frame callback. It returns false once the scene is
// stopped, telling the host to stop scheduling frames.
func (s *Scene) Tick() bool {
	if s.state == StateStopped {
		return false
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.Stop()
		return false
	}
	if s.state == StatePaused {
		return true
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.canvas.ClearRect(-s.origin.X, -s.origin.Y, s.width, s.height)
	p := s.pointer
	for _, it := range s.items {
		it.Draw(s.canvas, p)
	}
	s.frame++

	if s.debug {
		s.debugLog(frameStats{
			frame:    s.frame,
			items:    len(s.items),
			drawTime: time.Since(t0),
			pointer:  p,
		})
	}
	return true
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
