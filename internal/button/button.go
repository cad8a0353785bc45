// Package button is the stateless push button shared by both games.
package button

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/guesstimate/internal/theme"
)

// Variant selects the button's look.
type Variant int

const (
	Primary Variant = iota
	Secondary
)

func (v Variant) String() string {
	if v == Secondary {
		return "secondary"
	}
	return "primary"
}

// Button is a label, a look and an action. It keeps no state of its own.
type Button struct {
	Label    string
	Variant  Variant
	Disabled bool
	OnPress  func()
}

// Press runs the action unless the button is disabled. It reports whether
// the action ran.
func (b Button) Press() bool {
	if b.Disabled || b.OnPress == nil {
		return false
	}
	b.OnPress()
	return true
}

func (b Button) style(p theme.Palette) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	switch {
	case b.Disabled:
		return s.Foreground(p.DisabledFg).Background(p.DisabledBg).Bold(false)
	case b.Variant == Secondary:
		return s.Foreground(p.SecondaryFg).Background(p.SecondaryBg)
	default:
		return s.Foreground(p.PrimaryFg).Background(p.PrimaryBg)
	}
}

// Render draws the button on one line.
func (b Button) Render(p theme.Palette) string {
	return b.style(p).Render(b.Label)
}

// Width is the rendered width in cells.
func (b Button) Width() int {
	return lipgloss.Width(b.Render(theme.DarkPalette()))
}

// Bar is a row of buttons laid out left to right with a fixed gap.
type Bar struct {
	Buttons []Button
	Gap     int
}

// Render draws the row.
func (r Bar) Render(p theme.Palette) string {
	parts := make([]string, 0, len(r.Buttons)*2)
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", r.Gap))
		}
		parts = append(parts, b.Render(p))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// HitTest returns the index of the button covering column col of the row,
// or -1.
func (r Bar) HitTest(col int) int {
	x := 0
	for i, b := range r.Buttons {
		if i > 0 {
			x += r.Gap
		}
		w := b.Width()
		if col >= x && col < x+w {
			return i
		}
		x += w
	}
	return -1
}
