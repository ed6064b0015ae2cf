package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Screen: ScreenConfig{
			Width:     800,
			Height:    600,
			FrameRate: 30,
		},
		Player: EntityConfig{
			Size:  50,
			Speed: 10,
		},
		Enemy: EntityConfig{
			Size:  50,
			Speed: 10,
		},
		Palette: PaletteConfig{
			Background: "#000000",
			Player:     "#FF0000",
			Enemy:      "#FFFFFF",
			Text:       "#FFFFFF",
			GameOver:   "#FF0000",
		},
		Fonts: FontConfig{
			ScoreSize: 36,
			TitleSize: 72,
		},
		Input: InputConfig{
			HoldTicks: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
