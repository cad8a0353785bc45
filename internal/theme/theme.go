// Package theme resolves the light/dark preference and the palettes drawn
// with it.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the configured preference.
type Mode string

const (
	Auto  Mode = "auto"
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts auto, light or dark in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Auto:
		return Auto, nil
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want auto, light or dark)", s)
}

// Palette holds the semantic colors for one theme.
type Palette struct {
	Name string
	Dark bool

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Line   lipgloss.Color
	Border lipgloss.Color
	Guess  lipgloss.Color
	Fill   lipgloss.Color
	Target lipgloss.Color
	Error  lipgloss.Color

	PrimaryFg   lipgloss.Color
	PrimaryBg   lipgloss.Color
	SecondaryFg lipgloss.Color
	SecondaryBg lipgloss.Color
	DisabledFg  lipgloss.Color
	DisabledBg  lipgloss.Color
}

// Catppuccin Mocha.
var darkPalette = Palette{
	Name:        "dark",
	Dark:        true,
	Text:        "#cdd6f4",
	Muted:       "#a6adc8",
	Line:        "#bac2de",
	Border:      "#585b70",
	Guess:       "#89b4fa",
	Fill:        "#313244",
	Target:      "#a6e3a1",
	Error:       "#f38ba8",
	PrimaryFg:   "#1e1e2e",
	PrimaryBg:   "#89b4fa",
	SecondaryFg: "#cdd6f4",
	SecondaryBg: "#45475a",
	DisabledFg:  "#6c7086",
	DisabledBg:  "#313244",
}

// Catppuccin Latte.
var lightPalette = Palette{
	Name:        "light",
	Text:        "#4c4f69",
	Muted:       "#6c6f85",
	Line:        "#4c4f69",
	Border:      "#9ca0b0",
	Guess:       "#1e66f5",
	Fill:        "#ccd0da",
	Target:      "#40a02b",
	Error:       "#d20f39",
	PrimaryFg:   "#eff1f5",
	PrimaryBg:   "#1e66f5",
	SecondaryFg: "#4c4f69",
	SecondaryBg: "#ccd0da",
	DisabledFg:  "#9ca0b0",
	DisabledBg:  "#e6e9ef",
}

// DarkPalette returns the dark palette.
func DarkPalette() Palette { return darkPalette }

// LightPalette returns the light palette.
func LightPalette() Palette { return lightPalette }

// hasDarkBackground is swapped in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// Detect resolves mode to a palette. Auto asks the terminal for its
// background.
func Detect(mode Mode) Palette {
	switch mode {
	case Light:
		return lightPalette
	case Dark:
		return darkPalette
	}
	if hasDarkBackground() {
		return darkPalette
	}
	return lightPalette
}

// All returns every palette color, for validation.
func (p Palette) All() []lipgloss.Color {
	return []lipgloss.Color{
		p.Text, p.Muted, p.Line, p.Border, p.Guess, p.Fill, p.Target, p.Error,
		p.PrimaryFg, p.PrimaryBg, p.SecondaryFg, p.SecondaryBg, p.DisabledFg, p.DisabledBg,
	}
}
