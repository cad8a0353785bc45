package angle

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Unit is the display preference. It never changes the stored value.
type Unit int

const (
	Degrees Unit = iota
	Radians
)

func (u Unit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Radians {
		return Degrees
	}
	return Radians
}

// Format renders rad in the given unit: whole degrees in [0, 360) or radians
// in [0, 2π) with two decimals.
func Format(rad float64, unit Unit) string {
	if unit == Radians {
		return decimal.NewFromFloat(NormalizeRadians(rad)).StringFixed(2) + " rad"
	}
	deg := math.Floor(NormalizeDegrees(rad) + 0.5)
	if deg >= 360 {
		deg = 0
	}
	return strconv.Itoa(int(deg)) + "°"
}
