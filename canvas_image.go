package tagball

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// faceCache hands out text/v2 faces of one font source, one per size.
type faceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// newFaceCache parses TrueType data. Nil data selects Go Regular.
func newFaceCache(ttfData []byte) (*faceCache, error) {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("tagball: failed to parse TTF data: %w", err)
	}
	return &faceCache{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (fc *faceCache) face(size float64) *text.GoTextFace {
	if f, ok := fc.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fc.source, Size: size}
	fc.faces[size] = f
	return f
}

// measure returns the advance width of s at the given size.
func (fc *faceCache) measure(s string, size float64) float64 {
	return text.Advance(s, fc.face(size))
}

// ImageCanvas is a Canvas backed by an offscreen Ebitengine image. Labels
// are drawn with text/v2; the image keeps its contents between frames so a
// paused scene keeps showing its last frame.
type ImageCanvas struct {
	transformStack

	img      *ebiten.Image
	fonts    *faceCache
	fontSize float64
	fill     Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewImageCanvas creates a width×height canvas. ttfData selects the label
// font; nil uses Go Regular.
func NewImageCanvas(width, height int, ttfData []byte) (*ImageCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new image canvas: size %dx%d: %w", width, height, ErrConfiguration)
	}
	fonts, err := newFaceCache(ttfData)
	if err != nil {
		return nil, err
	}
	return &ImageCanvas{
		img:           ebiten.NewImage(width, height),
		fonts:         fonts,
		fontSize:      DefaultFontSize,
		fill:          ColorBlack,
		ScreenshotDir: "screenshots",
	}, nil
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *ebiten.Image { return c.img }

// Size implements Canvas.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// ClearRect implements Canvas.
func (c *ImageCanvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.apply(x, y)
	r := image.Rect(int(x0), int(y0), int(x0+w+0.5), int(y0+h+0.5)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

// SetFontSize implements Canvas.
func (c *ImageCanvas) SetFontSize(px float64) {
	if px > 0 {
		c.fontSize = px
	}
}

// MeasureText implements Canvas.
func (c *ImageCanvas) MeasureText(s string) float64 {
	return c.fonts.measure(s, c.fontSize)
}

// SetFillColor implements Canvas.
func (c *ImageCanvas) SetFillColor(col Color) { c.fill = col }

// FillText implements Canvas.
func (c *ImageCanvas) FillText(s string, x, y float64) {
	sx, sy := c.apply(x, y)
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(c.fill.NRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.img, s, c.fonts.face(c.fontSize), op)
}
