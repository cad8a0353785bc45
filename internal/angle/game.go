package angle

import (
	"math"

	"github.com/jask/guesstimate/internal/round"
)

// Rand is the randomness a Game draws targets from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Game is one angle round. It is owned by a single view and mutated only
// through its transition methods.
type Game struct {
	rng  Rand
	unit Unit

	target   float64
	current  float64
	dragging bool
	grade    Grade
	shown    bool
}

// NewGame starts the first round.
func NewGame(rng Rand, unit Unit) *Game {
	g := &Game{rng: rng, unit: unit}
	g.NewRound()
	return g
}

// NewTarget rolls a target. In degrees it is a whole degree; in radians it is
// rounded to two decimals.
func NewTarget(rng Rand, unit Unit) float64 {
	if unit == Radians {
		return math.Round(rng.Float64()*2*math.Pi*100) / 100
	}
	return FromDegrees(float64(rng.IntN(360)))
}

// NewCurrent picks the neutral starting guess inside [π/2, 3π/4].
func NewCurrent(rng Rand) float64 {
	return rng.Float64()*(3*math.Pi/4-math.Pi/2) + math.Pi/2
}

func (g *Game) Target() float64 { return g.target }
func (g *Game) Current() float64 { return g.current }
func (g *Game) Unit() Unit       { return g.unit }
func (g *Game) Dragging() bool   { return g.dragging }
func (g *Game) ShowScore() bool  { return g.shown }

// Score is the grade of the submitted guess; ok is false before submit.
func (g *Game) Score() (Grade, bool) {
	return g.grade, g.shown
}

// Phase reports where the round sits.
func (g *Game) Phase() round.Phase {
	switch {
	case g.shown:
		return round.Submitted
	case g.dragging:
		return round.Dragging
	default:
		return round.Idle
	}
}

// Diff is the current circular error in degrees.
func (g *Game) Diff() float64 {
	return Difference(g.target, g.current)
}

// Layout is the figure for this frame.
func (g *Game) Layout() Points {
	return Layout(g.current, g.target)
}

// PointerDown grabs the handle. It is refused once the round is submitted.
func (g *Game) PointerDown() bool {
	if g.shown {
		return false
	}
	g.dragging = true
	return true
}

// PointerMove aims the movable arm at p while dragging.
func (g *Game) PointerMove(p Point) bool {
	if !g.dragging || g.shown {
		return false
	}
	g.current = FromPointer(Center, p)
	return true
}

// PointerUp releases the handle.
func (g *Game) PointerUp() {
	g.dragging = false
}

// Submit grades the guess and freezes the round. A second submit is a no-op.
func (g *Game) Submit() (Grade, bool) {
	if g.shown {
		return g.grade, false
	}
	g.dragging = false
	g.grade = GradeFor(g.Diff())
	g.shown = true
	return g.grade, true
}

// NewRound rolls a fresh target and resets the guess from any state.
func (g *Game) NewRound() {
	g.current = NewCurrent(g.rng)
	g.target = NewTarget(g.rng, g.unit)
	g.dragging = false
	g.grade = GradeNone
	g.shown = false
}

// ToggleUnit switches the display unit and clears any shown score. The
// target is kept.
func (g *Game) ToggleUnit() {
	g.unit = g.unit.Toggle()
	g.grade = GradeNone
	g.shown = false
}

// Nudge turns the guess by deg degrees through the same drag transitions a
// pointer would use. A drag already in progress stays held.
func (g *Game) Nudge(deg float64) bool {
	held := g.dragging
	if !g.PointerDown() {
		return false
	}
	if !held {
		defer g.PointerUp()
	}
	return g.PointerMove(PointAt(Center, ArmLength, g.current+FromDegrees(deg)))
}

// OnHandle reports whether p is close enough to the movable arm end to grab.
func (g *Game) OnHandle(p Point, slack float64) bool {
	end := PointAt(Center, ArmLength, g.current)
	return math.Hypot(p.X-end.X, p.Y-end.Y) <= HandleRadius+slack
}
