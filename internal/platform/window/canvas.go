package window

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dodger/internal/core"
)

// LoadFont parses the bundled Go Regular typeface.
func LoadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// Canvas draws onto an ebiten image in logical pixels.
// The runner points it at the frame's screen before every Render.
type Canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewCanvas creates a canvas that renders text with source.
func NewCanvas(source *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		source: source,
		faces:  make(map[int]*text.GoTextFace),
	}
}

// SetTarget sets the image subsequent draws go to.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) face(size int) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: float64(size)}
	c.faces[size] = f
	return f
}

// MeasureText implements core.TextMeasurer, rounding up to whole pixels.
func (c *Canvas) MeasureText(s string, size int) (w, h int) {
	fw, fh := text.Measure(s, c.face(size), 0)
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(col core.Color) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(col.RGBA())
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if c.dst == nil || r.Empty() {
		return
	}
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

// DrawText implements core.Canvas. (x, y) is the top-left of the text box.
func (c *Canvas) DrawText(x, y int, s string, size int, col core.Color) (w, h int) {
	if c.dst != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(col.RGBA())
		text.Draw(c.dst, s, c.face(size), op)
	}
	return c.MeasureText(s, size)
}
