// Package config provides YAML-based game configuration loading, validation
// and hot reloading for dodger.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dodger/internal/core"
)

// DodgeConfig contains all configuration for the dodge game.
// It is passed by value; a running game never sees it change.
type DodgeConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Player  EntityConfig  `yaml:"player"`
	Enemy   EntityConfig  `yaml:"enemy"`
	Palette PaletteConfig `yaml:"palette"`
	Fonts   FontConfig    `yaml:"fonts"`
	Input   InputConfig   `yaml:"input"`
}

// ScreenConfig defines the logical playfield and loop rate.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	FrameRate int `yaml:"frame_rate"`
}

// EntityConfig defines a square entity's side length and per-tick speed.
type EntityConfig struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"`
}

// PaletteConfig holds "#RRGGBB" colors.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Enemy      string `yaml:"enemy"`
	Text       string `yaml:"text"`
	GameOver   string `yaml:"game_over"`
}

// FontConfig holds text sizes in logical pixels.
type FontConfig struct {
	ScoreSize int `yaml:"score_size"`
	TitleSize int `yaml:"title_size"`
}

// InputConfig tunes terminal input emulation.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports every invalid field at once.
func (c DodgeConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("screen.frame_rate", c.Screen.FrameRate)
	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("enemy.size", c.Enemy.Size)
	positive("enemy.speed", c.Enemy.Speed)
	positive("fonts.score_size", c.Fonts.ScoreSize)
	positive("fonts.title_size", c.Fonts.TitleSize)
	if c.Input.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must not be negative, got %d", c.Input.HoldTicks))
	}

	if c.Player.Size > c.Screen.Width || c.Player.Size*2 > c.Screen.Height {
		errs = append(errs, fmt.Errorf("player.size %d does not fit a %dx%d screen",
			c.Player.Size, c.Screen.Width, c.Screen.Height))
	}
	if c.Enemy.Size > c.Screen.Width {
		errs = append(errs, fmt.Errorf("enemy.size %d is wider than screen.width %d",
			c.Enemy.Size, c.Screen.Width))
	}

	colors := []struct{ name, value string }{
		{"palette.background", c.Palette.Background},
		{"palette.player", c.Palette.Player},
		{"palette.enemy", c.Palette.Enemy},
		{"palette.text", c.Palette.Text},
		{"palette.game_over", c.Palette.GameOver},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.name, err))
		}
	}

	return errors.Join(errs...)
}

// Colors converts the palette to core colors.
// Unparseable entries fall back to the default palette; call Validate first to reject them.
func (c DodgeConfig) Colors() core.Palette {
	p := core.DefaultPalette()
	parse := func(s string, dst *core.Color) {
		if col, err := core.ParseColor(s); err == nil {
			*dst = col
		}
	}
	parse(c.Palette.Background, &p.Background)
	parse(c.Palette.Player, &p.Player)
	parse(c.Palette.Enemy, &p.Enemy)
	parse(c.Palette.Text, &p.Text)
	parse(c.Palette.GameOver, &p.GameOver)
	return p
}
