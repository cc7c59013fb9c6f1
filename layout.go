package tagball

import "math"

// Tag is one configured label and its link target.
type Tag struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// LayoutOptions controls the spiral distribution and the rendering
// parameters shared by every laid-out item.
type LayoutOptions struct {
	// RadiusDivisor sets the rotation radius to width / RadiusDivisor.
	RadiusDivisor float64
	FontSize      float64
	// SpiralDensity is the number of items per spiral turn.
	SpiralDensity int
	BaseSpeed     float64
	SpeedDivisor  float64
}

// DefaultLayoutOptions returns the stock layout parameters.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		RadiusDivisor: 2.5,
		FontSize:      DefaultFontSize,
		SpiralDensity: 8,
		BaseSpeed:     DefaultBaseSpeed,
		SpeedDivisor:  DefaultSpeedDivisor,
	}
}

func (o LayoutOptions) withDefaults() LayoutOptions {
	d := DefaultLayoutOptions()
	if o.RadiusDivisor <= 0 {
		o.RadiusDivisor = d.RadiusDivisor
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	if o.SpiralDensity <= 0 {
		o.SpiralDensity = d.SpiralDensity
	}
	if o.BaseSpeed <= 0 {
		o.BaseSpeed = d.BaseSpeed
	}
	if o.SpeedDivisor <= 0 {
		o.SpeedDivisor = d.SpeedDivisor
	}
	return o
}

// SpiralTurns returns how many times the spiral winds around the sphere
// for n items at the given density.
func SpiralTurns(n, density int) int {
	if n <= 0 || density <= 0 {
		return 0
	}
	return (n + density - 1) / density
}

// SpiralPoint returns the unit-sphere position of item i out of n on a
// spiral with the given number of turns. y is evenly spaced over [-1, 1)
// and the azimuth advances with y.
func SpiralPoint(i, n, turns int) Vec3 {
	y := 2*float64(i)/float64(n) - 1
	phi := y * math.Pi * float64(turns)
	theta := math.Acos(y)
	rho := math.Sin(theta)
	return Vec3{
		X: math.Sin(phi) * rho,
		Y: y,
		Z: math.Cos(phi) * rho,
	}
}

// Layout places one item per tag on the sphere. The result is deterministic
// for the same tags and width. An empty tag list yields no items.
func Layout(tags []Tag, width float64, opts LayoutOptions) []*Item {
	opts = opts.withDefaults()
	n := len(tags)
	items := make([]*Item, 0, n)
	if n == 0 {
		return items
	}
	radius := width / opts.RadiusDivisor
	turns := SpiralTurns(n, opts.SpiralDensity)
	for i, tag := range tags {
		it := NewItem(SpiralPoint(i, n, turns), radius, opts.BaseSpeed, 0, ItemInfo{
			Label:    tag.Name,
			Link:     tag.Href,
			FontSize: opts.FontSize,
		})
		it.SetSpeedDivisor(opts.SpeedDivisor)
		it.SetBaseSpeed(opts.BaseSpeed)
		items = append(items, it)
	}
	return items
}
