package tagball

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults for item motion and labels.
const (
	DefaultFontSize     = 18
	DefaultSpeedDivisor = 250
	DefaultBaseSpeed    = math.Pi / 360
)

// ItemInfo is the display metadata of an item.
type ItemInfo struct {
	Label    string
	Link     string
	FontSize float64
}

// Item is one labeled point on the sphere.
//
// Position is kept on the unit sphere; the item's radius scales it into
// surface units when projecting. An item never reads scene state directly:
// the pointer reading is passed into Step and Draw.
type Item struct {
	Events *Observable

	pos          Vec3
	radius       float64
	rotate       float64
	speed        float64
	speedDivisor float64
	baseSpeed    float64
	info         ItemInfo
	box          Box
	paused       bool

	normal    Color
	highlight Color
	fade      *highlightFade

	renormEvery int
	steps       int
}

// NewItem creates an item at pos (unit sphere coordinates) projected with
// the given radius. The item listens for EventPause on its own Events.
func NewItem(pos Vec3, radius, speed, rotate float64, info ItemInfo) *Item {
	if info.FontSize <= 0 {
		info.FontSize = DefaultFontSize
	}
	it := &Item{
		Events:       NewObservable(),
		pos:          pos,
		radius:       radius,
		rotate:       rotate,
		speed:        speed,
		speedDivisor: DefaultSpeedDivisor,
		baseSpeed:    DefaultBaseSpeed,
		info:         info,
		normal:       ColorBlack,
		highlight:    ColorRed,
	}
	it.Events.Subscribe(EventPause, func(any) { it.Pause() })
	return it
}

// SetRotate sets the rotation-axis angle.
func (it *Item) SetRotate(angle float64) { it.rotate = angle }

// SetSpeed sets the angular speed in radians per frame.
func (it *Item) SetSpeed(speed float64) { it.speed = speed }

// SetSpeedDivisor sets the pointer radius that corresponds to the base
// speed. Non-positive values are ignored.
func (it *Item) SetSpeedDivisor(d float64) {
	if d > 0 {
		it.speedDivisor = d
	}
}

// SetBaseSpeed sets the angular speed reached at a pointer radius equal to
// the speed divisor. Non-positive values are ignored.
func (it *Item) SetBaseSpeed(s float64) {
	if s > 0 {
		it.baseSpeed = s
	}
}

// SetColors sets the normal and highlighted label colors. Alpha is ignored;
// it is derived from depth at draw time.
func (it *Item) SetColors(normal, highlight Color) {
	it.normal = normal
	it.highlight = highlight
}

// SetFade enables a highlight fade lasting the given number of frames.
// Zero disables it.
func (it *Item) SetFade(frames int) {
	if frames <= 0 {
		it.fade = nil
		return
	}
	it.fade = newHighlightFade(frames, nil)
}

// SetRenormalizeEvery rescales the position to unit length every n steps.
// Zero leaves floating-point drift uncorrected.
func (it *Item) SetRenormalizeEvery(n int) {
	if n < 0 {
		n = 0
	}
	it.renormEvery = n
}

// Pause freezes the item for its next step.
func (it *Item) Pause() { it.paused = true }

// Paused reports whether the next step will be skipped.
func (it *Item) Paused() bool { return it.paused }
func (it *Item) Position() Vec3 { return it.pos }
func (it *Item) Radius() float64 { return it.radius }
func (it *Item) Rotate() float64 { return it.rotate }
func (it *Item) Speed() float64 { return it.speed }
func (it *Item) Info() ItemInfo { return it.info }
func (it *Item) Box() Box { return it.box }
func (it *Item) Screen() (x, y float64) { return it.pos.X * it.radius, it.pos.Y * it.radius }

// Step advances the item by one frame. A paused item consumes the frame by
// clearing its pause flag and does not move.
//
// Otherwise the rotation axis and speed are taken from p, and the position
// is rotated by speed around the axis lying in the screen plane at angle
// rotate: the frame is turned so the axis lines up with y, the point is
// rotated about y, and the frame is turned back.
func (it *Item) Step(p PointerState) {
	if it.paused {
		it.paused = false
		return
	}
	it.SetRotate(p.Angle)
	it.SetSpeed(p.Radius / it.speedDivisor * it.baseSpeed)

	m := rotationAbout(it.rotate, it.speed)
	it.pos = vec3FromMgl(m.Mul3x1(it.pos.mgl()))

	it.steps++
	if it.renormEvery > 0 && it.steps%it.renormEvery == 0 {
		if l := it.pos.Len(); l > 0 {
			it.pos = Vec3{it.pos.X / l, it.pos.Y / l, it.pos.Z / l}
		}
	}
}

// rotationAbout returns Rz(-rotate)·Ry(speed)·Rz(rotate) in mgl64's
// convention, which is the screen-space rotation (y down) that turns the
// axis at angle rotate onto y, spins about y and turns back.
func rotationAbout(rotate, speed float64) mgl64.Mat3 {
	return mgl64.Rotate3DZ(-rotate).Mul3(mgl64.Rotate3DY(speed)).Mul3(mgl64.Rotate3DZ(rotate))
}

// ComputeBox recomputes the screen-space box for a label of the given
// width, centered on the projected position.
func (it *Item) ComputeBox(textWidth float64) Box {
	fs := it.info.FontSize
	it.box = Box{
		X: it.pos.X*it.radius - textWidth/2,
		Y: it.pos.Y*it.radius - fs/2,
		W: textWidth,
		H: fs,
		Z: it.pos.Z,
	}
	return it.box
}

// IsHovered reports whether ptr lies strictly inside the last computed box
// of a front-facing item. A hit publishes EventHover with the item as
// payload, so this query has side effects.
func (it *Item) IsHovered(ptr Vec2) bool {
	if it.box.Z <= 0 || !it.box.Contains(ptr.X, ptr.Y) {
		return false
	}
	it.Events.Publish(EventHover, it)
	return true
}

// Opacity returns the label alpha for the current depth: 1.0 facing the
// viewer, 0.1 at the back.
func (it *Item) Opacity() float64 {
	return it.pos.Z*0.45 + 0.55
}

// Draw paints the label on c and then steps the item with p.
func (it *Item) Draw(c Canvas, p PointerState) {
	c.SetFontSize(it.info.FontSize)
	it.ComputeBox(c.MeasureText(it.info.Label))

	hovered := it.IsHovered(p.Position())
	alpha := clamp01(it.Opacity())
	var col Color
	if it.fade != nil {
		col = blend(it.normal, it.highlight, it.fade.update(hovered), alpha)
	} else if hovered {
		col = it.highlight.WithAlpha(alpha)
	} else {
		col = it.normal.WithAlpha(alpha)
	}
	c.SetFillColor(col)

	x, y := it.Screen()
	c.FillText(it.info.Label, x, y)

	it.Step(p)
}
