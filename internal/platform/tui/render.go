package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodger/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings.
// Each SSH session gets its own so colors match that client's terminal profile.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer; nil uses lipgloss's default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(key cellStyle) lipgloss.Style {
	if st, ok := sr.styles[key]; ok {
		return st
	}
	st := sr.renderer.NewStyle().
		Foreground(lipgloss.Color(key.fg.Hex())).
		Background(lipgloss.Color(key.bg.Hex()))
	sr.styles[key] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			key := cellStyle{fg: start.FG, bg: start.BG}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
