package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodger/internal/core"
)

// Canvas scales a logical playfield onto a terminal Screen.
// Logical coordinates map to the nearest cell (ties round down), and a cell
// maps back to the logical point at its center, so a click on any drawn
// character lands inside the logical rectangle that produced it.
type Canvas struct {
	screen   *core.Screen
	logicalW int
	logicalH int
}

// NewCanvas wraps screen for a logicalW x logicalH playfield.
func NewCanvas(screen *core.Screen, logicalW, logicalH int) *Canvas {
	return &Canvas{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// nearest maps v in [0, logical) onto [0, cells), rounding half down.
func nearest(v, cells, logical int) int {
	return floorDiv(2*v*cells+logical-1, 2*logical)
}

// colFor maps a logical x to a column.
func (c *Canvas) colFor(x int) int {
	return nearest(x, c.screen.Width(), c.logicalW)
}

// rowFor maps a logical y to a row.
func (c *Canvas) rowFor(y int) int {
	return nearest(y, c.screen.Height(), c.logicalH)
}

// CellRect converts a logical rectangle to the cells it covers.
// Non-empty rectangles always cover at least one cell.
func (c *Canvas) CellRect(r core.Rect) core.Rect {
	x0, x1 := c.colFor(r.X), c.colFor(r.Right())
	y0, y1 := c.rowFor(r.Y), c.rowFor(r.Bottom())
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToLogical maps a cell to the logical point at its center.
// ok is false when the cell is outside the canvas (e.g. the help footer).
func (c *Canvas) ToLogical(col, row int) (core.Point, bool) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return core.Point{}, false
	}
	return core.Point{
		X: floorDiv((2*col+1)*c.logicalW, 2*cols),
		Y: floorDiv((2*row+1)*c.logicalH, 2*rows),
	}, true
}

// MeasureText implements core.TextMeasurer. Terminal text is always one row
// tall regardless of size; widths are rounded up to whole logical pixels.
func (c *Canvas) MeasureText(text string, _ int) (w, h int) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	n := lipgloss.Width(text)
	w = (n*c.logicalW + cols - 1) / cols
	h = (c.logicalH + rows - 1) / rows
	return w, h
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(col core.Color) {
	c.screen.Fill(col)
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	c.screen.FillRect(c.CellRect(r), col)
}

// DrawText implements core.Canvas.
func (c *Canvas) DrawText(x, y int, text string, size int, col core.Color) (w, h int) {
	c.screen.DrawText(c.colFor(x), c.rowFor(y), text, col)
	return c.MeasureText(text, size)
}
