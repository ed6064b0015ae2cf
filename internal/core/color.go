package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color.
// Both the terminal and the window backends translate it to their own representation.
type Color struct {
	R, G, B uint8
}

// Predefined colors used by the default palette.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
)

// ParseColor parses a "#RRGGBB" or "RRGGBB" hex string.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts the color to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette holds every color the game draws with.
type Palette struct {
	Background Color
	Player     Color
	Enemy      Color
	Text       Color
	GameOver   Color
}

// DefaultPalette returns black background, red player, white enemy and white text.
func DefaultPalette() Palette {
	return Palette{
		Background: Black,
		Player:     Red,
		Enemy:      White,
		Text:       White,
		GameOver:   Red,
	}
}
