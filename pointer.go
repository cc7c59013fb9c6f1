package tagball

import "math"

// PolarPayload is published as EventPolar. Angle is the rotation-axis angle
// derived from the pointer offset, not a standard polar angle.
type PolarPayload struct {
	Angle  float64
	Radius float64
}

// CartesianPayload is published as EventCartesian.
type CartesianPayload struct {
	X, Y float64
}

// PointerState is the pointer reading shared by every item each frame.
// X and Y are offsets from the scene origin; Angle and Radius drive the
// rotation axis and angular speed.
type PointerState struct {
	X, Y   float64
	Angle  float64
	Radius float64
}

// Position returns the cartesian part of the pointer state.
func (p PointerState) Position() Vec2 {
	return Vec2{p.X, p.Y}
}

// initialPointerRadius gives the sphere a slow spin before the pointer ever
// moves over the surface.
const initialPointerRadius = 180

// initialPointerState is the reading a scene of the given size starts with.
func initialPointerState(width, height float64) PointerState {
	return PointerState{
		X:      -width / 2,
		Y:      -height / 2,
		Angle:  0,
		Radius: initialPointerRadius,
	}
}

// PointerTracker converts raw surface coordinates into offsets relative to
// an origin and publishes them in polar and cartesian form.
type PointerTracker struct {
	Events *Observable

	origin Vec2
}

// NewPointerTracker returns a tracker measuring offsets from origin.
func NewPointerTracker(origin Vec2) *PointerTracker {
	return &PointerTracker{
		Events: NewObservable(),
		origin: origin,
	}
}

// Origin returns the point offsets are measured from.
func (t *PointerTracker) Origin() Vec2 {
	return t.origin
}

// Move handles a pointer move to surface coordinates (x, y). It publishes
// EventPolar and then EventCartesian.
func (t *PointerTracker) Move(x, y float64) {
	dx := x - t.origin.X
	dy := y - t.origin.Y
	polar := pointerPolar(dx, dy)
	t.Events.Publish(EventPolar, polar)
	t.Events.Publish(EventCartesian, CartesianPayload{X: dx, Y: dy})
}

// pointerPolar maps an offset to the rotation-axis angle and magnitude.
// A zero offset has no direction; it maps to angle 0 with radius 0, which
// also means zero angular speed.
func pointerPolar(dx, dy float64) PolarPayload {
	r := math.Hypot(dx, dy)
	if r == 0 {
		return PolarPayload{}
	}
	phi := math.Acos(clampUnit(dy / r))
	if dx < 0 {
		phi = -phi
	}
	return PolarPayload{Angle: phi + math.Pi/2, Radius: r}
}

// clampUnit keeps acos arguments in [-1, 1] against rounding.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
