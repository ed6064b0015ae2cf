package core

// TextMeasurer reports the size of rendered text in logical pixels.
type TextMeasurer interface {
	MeasureText(text string, size int) (w, h int)
}

// Canvas is the drawing surface a game renders onto.
// Coordinates are logical playfield pixels; backends scale as needed.
type Canvas interface {
	TextMeasurer

	// Clear fills the whole frame with the given color.
	Clear(c Color)

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawText draws text with its top-left corner at (x, y) and returns its size.
	DrawText(x, y int, text string, size int, c Color) (w, h int)
}

// FixedMetrics measures text assuming every glyph is half as wide as the font size
// and one font size tall. Used before any backend has reported real metrics.
type FixedMetrics struct{}

// MeasureText implements TextMeasurer.
func (FixedMetrics) MeasureText(text string, size int) (w, h int) {
	n := 0
	for range text {
		n++
	}
	return n * size / 2, size
}
