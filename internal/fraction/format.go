package fraction

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Unit is the display preference for the fraction game.
type Unit int

const (
	Fractional Unit = iota
	Decimal
)

func (u Unit) String() string {
	if u == Decimal {
		return "decimal"
	}
	return "fraction"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Decimal {
		return Fractional
	}
	return Decimal
}

// Thresholds are the edges past which a guess is shown as a whole "1" or "0"
// in fraction mode.
type Thresholds struct {
	OneAbove  float64
	ZeroBelow float64
}

// DefaultThresholds returns the stock display edges.
func DefaultThresholds() Thresholds {
	return Thresholds{OneAbove: 0.98, ZeroBelow: 0.02}
}

// Format renders a guess in [0, 1].
func Format(x float64, unit Unit, th Thresholds) string {
	switch {
	case unit == Decimal:
		return fixed2(x)
	case x > th.OneAbove:
		return "1"
	case x < th.ZeroBelow:
		return "0"
	default:
		return Approximate(x).String()
	}
}

// FormatTarget renders the target exactly in fraction mode.
func FormatTarget(r Ratio, unit Unit) string {
	if unit == Decimal {
		return fixed2(r.Float())
	}
	return strconv.Itoa(r.Num) + " / " + strconv.Itoa(r.Den)
}

func fixed2(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
