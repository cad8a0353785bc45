package angle

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in scene units.
type Point struct {
	X, Y float64
}

const (
	SceneSize       = 300.0
	ArmLength       = 100.0
	TargetArmLength = 40.0
	ArcRadius       = 30.0
	TargetArcRadius = 40.0
	HandleRadius    = 6.0
)

// Center is the vertex shared by both arms.
var Center = Point{X: 150, Y: 150}

// Points is the figure layout for one frame.
type Points struct {
	Center        Point
	FixedEnd      Point
	MovableEnd    Point
	TargetBaseEnd Point
	TargetEnd     Point
}

// WrapDegrees folds deg into [0, 360). Values already in range are returned
// unchanged, which keeps it idempotent.
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// NormalizeDegrees converts rad to degrees in [0, 360).
func NormalizeDegrees(rad float64) float64 {
	return WrapDegrees(rad * 180 / math.Pi)
}

// NormalizeRadians folds rad into [0, 2π).
func NormalizeRadians(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi || r == 0 {
		return 0
	}
	return r
}

// FromDegrees converts degrees to radians.
func FromDegrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// CircularDistance is the shorter way round the circle between two angles
// given in degrees within [0, 360).
func CircularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

// Difference is the circular distance in degrees between two angles given in
// radians.
func Difference(target, guess float64) float64 {
	return CircularDistance(NormalizeDegrees(target), NormalizeDegrees(guess))
}

// FromPointer returns the angle of p around center. Screen Y grows downward
// so the vertical offset is negated.
func FromPointer(center, p Point) float64 {
	return math.Atan2(-(p.Y - center.Y), p.X-center.X)
}

// PointAt is the end of an arm of the given length at rad around center.
func PointAt(center Point, length, rad float64) Point {
	return Point{
		X: center.X + length*math.Cos(rad),
		Y: center.Y - length*math.Sin(rad),
	}
}

// Layout computes the arm endpoints for the current guess and target.
func Layout(current, target float64) Points {
	return Points{
		Center:        Center,
		FixedEnd:      Point{X: Center.X + ArmLength, Y: Center.Y},
		MovableEnd:    PointAt(Center, ArmLength, current),
		TargetBaseEnd: Point{X: Center.X + TargetArmLength, Y: Center.Y},
		TargetEnd:     PointAt(Center, TargetArmLength, target),
	}
}

// ArcPath returns SVG path data for the wedge swept from the horizontal arm
// to rad.
func ArcPath(center Point, radius, rad float64) string {
	start := Point{X: center.X + radius, Y: center.Y}
	end := PointAt(center, radius, rad)
	large := 0
	if NormalizeDegrees(rad) > 180 {
		large = 1
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, center)
	b.WriteString(" L ")
	writePoint(&b, start)
	b.WriteString(" A ")
	b.WriteString(num(radius))
	b.WriteByte(' ')
	b.WriteString(num(radius))
	b.WriteString(" 0 ")
	b.WriteString(strconv.Itoa(large))
	b.WriteString(" 0 ")
	writePoint(&b, end)
	b.WriteString(" L ")
	writePoint(&b, center)
	b.WriteString(" Z")
	return b.String()
}

// ArcPoints samples the wedge outline from angle 0 to rad, counter-clockwise
// on screen. steps is the number of samples along the curve.
func ArcPoints(center Point, radius, rad float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	sweep := NormalizeRadians(rad)
	out := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		out = append(out, PointAt(center, radius, sweep*float64(i)/float64(steps)))
	}
	return out
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(num(p.X))
	b.WriteByte(' ')
	b.WriteString(num(p.Y))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
