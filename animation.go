package tagball

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightFade eases an item's label between its normal and highlight
// colors. Durations are measured in frames: the tween advances by one unit
// per Draw call, so the fade is independent of wall-clock time.
//
// There is no global animation manager; each item owns its fade.
type highlightFade struct {
	frames float32
	fn     ease.TweenFunc

	tween  *gween.Tween
	target float32 // 0 = normal, 1 = highlight
	value  float32
}

func newHighlightFade(frames int, fn ease.TweenFunc) *highlightFade {
	if fn == nil {
		fn = ease.InOutQuad
	}
	return &highlightFade{frames: float32(frames), fn: fn}
}

// update retargets the fade when the hover state changes and advances it by
// one frame. It returns the blend factor toward the highlight color.
func (f *highlightFade) update(hovered bool) float64 {
	var target float32
	if hovered {
		target = 1
	}
	if target != f.target || f.tween == nil {
		// Scale duration by the remaining distance so a reversed fade
		// does not take the full duration again.
		dist := target - f.value
		if dist < 0 {
			dist = -dist
		}
		d := f.frames * dist
		if d <= 0 {
			f.value = target
			f.target = target
			f.tween = gween.New(target, target, 1, f.fn)
			return float64(f.value)
		}
		f.tween = gween.New(f.value, target, d, f.fn)
		f.target = target
	}
	v, _ := f.tween.Update(1)
	f.value = v
	return float64(v)
}

// blend mixes normal and highlight in RGB space and applies alpha.
func blend(normal, highlight Color, t, alpha float64) Color {
	if t <= 0 {
		return normal.WithAlpha(alpha)
	}
	if t >= 1 {
		return highlight.WithAlpha(alpha)
	}
	return fromColorful(normal.colorful().BlendRgb(highlight.colorful(), t), alpha)
}
