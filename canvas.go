package tagball

// Canvas is the drawing surface a Scene renders to. Coordinates passed to
// ClearRect and FillText are in the current (translated) space.
type Canvas interface {
	// Size returns the surface dimensions in surface units.
	Size() (width, height int)

	// Save pushes the current translation; Restore pops it. Restore on an
	// empty stack resets to the identity.
	Save()
	Restore()
	Translate(x, y float64)

	ClearRect(x, y, w, h float64)

	// SetFontSize selects the label font size for MeasureText and FillText.
	SetFontSize(px float64)
	MeasureText(s string) float64

	SetFillColor(c Color)
	// FillText paints s centered horizontally and vertically on (x, y).
	FillText(s string, x, y float64)
}

// transformStack implements Save/Restore/Translate for canvases that only
// need a translation.
type transformStack struct {
	tx, ty float64
	saved  []Vec2
}

func (t *transformStack) Save() {
	t.saved = append(t.saved, Vec2{t.tx, t.ty})
}

func (t *transformStack) Restore() {
	if len(t.saved) == 0 {
		t.tx, t.ty = 0, 0
		return
	}
	top := t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
	t.tx, t.ty = top.X, top.Y
}

func (t *transformStack) Translate(x, y float64) {
	t.tx += x
	t.ty += y
}

// apply maps a point from translated space to surface space.
func (t *transformStack) apply(x, y float64) (float64, float64) {
	return x + t.tx, y + t.ty
}
