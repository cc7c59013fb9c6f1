package tagball

import (
	"context"
	"fmt"
)

// Cloud wires a Scene, its items and a PointerTracker together: pointer
// moves reach the scene through the tracker, hovering any item pauses every
// item, and clicks navigate to the hovered item's link.
type Cloud struct {
	scene   *Scene
	tracker *PointerTracker
	nav     Navigator
	cfg     Config

	injectQueue []syntheticPointerEvent
}

// New lays out cfg.Tags on c and starts a scene for them. nav may be nil,
// in which case clicks only hit-test.
func New(c Canvas, cfg Config, nav Navigator) (*Cloud, error) {
	if c == nil {
		return nil, fmt.Errorf("new cloud: nil canvas: %w", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new cloud: %w", err)
	}
	cfg = cfg.withDefaults()

	w, h := c.Size()
	origin := Vec2{float64(w) / 2, float64(h) / 2}
	if cfg.Origin != nil {
		origin = *cfg.Origin
	}

	normal, highlight, _ := cfg.palette()
	items := Layout(cfg.Tags, float64(w), cfg.LayoutOptions())
	for _, it := range items {
		it.SetColors(normal, highlight)
		it.SetFade(cfg.FadeFrames)
		it.SetRenormalizeEvery(cfg.RenormalizeEvery)
	}

	scene, err := NewScene(c, SceneConfig{Items: items, Origin: origin})
	if err != nil {
		return nil, fmt.Errorf("new cloud: %w", err)
	}

	cl := &Cloud{
		scene:   scene,
		tracker: NewPointerTracker(origin),
		nav:     nav,
		cfg:     cfg,
	}
	cl.tracker.Events.Subscribe(EventCartesian, func(p any) {
		scene.SetPointerCartesian(p.(CartesianPayload))
	})
	cl.tracker.Events.Subscribe(EventPolar, func(p any) {
		scene.SetPointerPolar(p.(PolarPayload))
	})
	for _, it := range items {
		it.Events.Subscribe(EventHover, func(any) { cl.pauseAll() })
	}

	scene.Start(context.Background())
	return cl, nil
}

// pauseAll sets every item's pause flag.
func (cl *Cloud) pauseAll() {
	for _, it := range cl.scene.items {
		it.Pause()
	}
}

func (cl *Cloud) Scene() *Scene { return cl.scene }
func (cl *Cloud) Tracker() *PointerTracker { return cl.tracker }

// Config returns the configuration with defaults applied.
func (cl *Cloud) Config() Config { return cl.cfg }

// PointerMove handles a pointer move to surface coordinates (x, y).
func (cl *Cloud) PointerMove(x, y float64) {
	cl.tracker.Move(x, y)
}

// Click handles a click at surface coordinates (x, y). Every item under the
// pointer is navigated to; afterwards the pointer is parked at the far
// corner of the surface. It returns how many links were navigated and the
// first navigator error.
func (cl *Cloud) Click(x, y float64) (int, error) {
	cl.tracker.Move(x, y)
	ptr := cl.scene.Pointer().Position()

	var n int
	var firstErr error
	for _, it := range cl.scene.items {
		if !it.IsHovered(ptr) {
			continue
		}
		n++
		if cl.nav == nil {
			continue
		}
		link := it.Info().Link
		if err := cl.nav.Navigate(link, IsExternal(link)); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("navigate %q: %w", link, err)
		}
	}
	if n > 0 {
		w, h := cl.scene.Size()
		cl.tracker.Move(w, h)
	}
	return n, firstErr
}

// AnyPaused reports whether any item is paused, which is the case while
// the pointer hovers an item. Hosts use it as a cursor hint.
func (cl *Cloud) AnyPaused() bool {
	for _, it := range cl.scene.items {
		if it.Paused() {
			return true
		}
	}
	return false
}

// Tick applies one queued synthetic event, if any, and draws a frame.
func (cl *Cloud) Tick() bool {
	cl.processInjectedInput()
	return cl.scene.Tick()
}

// Stop stops the scene.
func (cl *Cloud) Stop() {
	cl.scene.Stop()
}
