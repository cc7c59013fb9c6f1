package tagball

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Default terminal cell size in surface units. Terminal cells are roughly
// twice as tall as they are wide.
const (
	DefaultCellW = 9
	DefaultCellH = 18
)

// TermCanvas is a Canvas drawing into a tcell screen. Each terminal cell
// covers CellW×CellH surface units, so a scene laid out for a pixel surface
// keeps its proportions. Label opacity is emulated by blending the fill
// color toward the background.
type TermCanvas struct {
	transformStack

	screen       tcell.Screen
	CellW, CellH float64
	Background   Color

	fontSize float64
	fill     Color
}

// NewTermCanvas wraps an initialized tcell screen.
func NewTermCanvas(screen tcell.Screen, background Color) *TermCanvas {
	return &TermCanvas{
		screen:     screen,
		CellW:      DefaultCellW,
		CellH:      DefaultCellH,
		Background: background,
		fontSize:   DefaultFontSize,
		fill:       ColorBlack,
	}
}

// Screen returns the underlying tcell screen.
func (c *TermCanvas) Screen() tcell.Screen { return c.screen }

// Size implements Canvas. The size is the screen size in surface units.
func (c *TermCanvas) Size() (int, int) {
	cols, rows := c.screen.Size()
	return int(float64(cols) * c.CellW), int(float64(rows) * c.CellH)
}

// CellAt maps surface coordinates to the terminal cell containing them.
func (c *TermCanvas) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / c.CellW)), int(math.Floor(y / c.CellH))
}

// CellCenter maps a terminal cell to the surface coordinates of its center.
func (c *TermCanvas) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.CellW, (float64(row) + 0.5) * c.CellH
}

func (c *TermCanvas) bgStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(c.Background))
}

// ClearRect implements Canvas.
func (c *TermCanvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.apply(x, y)
	col0, row0 := c.CellAt(x0, y0)
	col1, row1 := c.CellAt(x0+w-1, y0+h-1)
	cols, rows := c.screen.Size()
	col0, row0 = max(col0, 0), max(row0, 0)
	col1, row1 = min(col1, cols-1), min(row1, rows-1)
	st := c.bgStyle()
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// SetFontSize implements Canvas. The terminal has a single font size, but
// the value is kept so callers see consistent box heights.
func (c *TermCanvas) SetFontSize(px float64) {
	if px > 0 {
		c.fontSize = px
	}
}

// MeasureText implements Canvas. Width is the display width in cells times
// the cell width.
func (c *TermCanvas) MeasureText(s string) float64 {
	return float64(runewidth.StringWidth(s)) * c.CellW
}

// SetFillColor implements Canvas.
func (c *TermCanvas) SetFillColor(col Color) { c.fill = col }

// FillText implements Canvas.
func (c *TermCanvas) FillText(s string, x, y float64) {
	sx, sy := c.apply(x, y)
	w := c.MeasureText(s)
	col, row := c.CellAt(sx-w/2+c.CellW/2, sy)
	cols, rows := c.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	fg := blend(c.Background, c.fill, c.fill.A, 1)
	st := c.bgStyle().Foreground(tcellColor(fg))
	if c.fill.A >= 0.8 {
		st = st.Bold(true)
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col >= 0 && col+rw <= cols {
			c.screen.SetContent(col, row, r, nil, st)
		}
		col += rw
	}
}

// Show flushes pending changes to the terminal.
func (c *TermCanvas) Show() {
	c.screen.Show()
}

func tcellColor(c Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
