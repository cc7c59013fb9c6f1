package tagball

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack and ColorRed are the normal and highlighted label colors.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts c to a straight-alpha image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// colorful drops alpha; callers keep it separately.
func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, a float64) Color {
	c = c.Clamped()
	return Color{c.R, c.G, c.B, a}
}

// ParseColor parses a "#rrggbb" hex string into an opaque Color.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return fromColorful(c, 1), nil
}

// Vec2 is a 2D vector used for pointer positions and origins.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a point on (or near) the unit sphere.
type Vec3 struct {
	X, Y, Z float64
}

// Len returns the Euclidean norm of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Box is the screen-space rectangle of a drawn label. Z is the depth of the
// item it belongs to and is only used for facing and opacity.
type Box struct {
	X, Y, W, H, Z float64
}

// Contains reports whether (x, y) lies strictly inside the box. Points on
// the edge are outside.
func (b Box) Contains(x, y float64) bool {
	return x > b.X && x < b.X+b.W &&
		y > b.Y && y < b.Y+b.H
}

// Event names published on an Observable.
const (
	EventPolar     = "polar"     // PolarPayload, from PointerTracker
	EventCartesian = "cartesian" // CartesianPayload, from PointerTracker
	EventHover     = "hover"     // *Item, from Item.IsHovered
	EventPause     = "pause"     // nil, from Scene.Pause
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
