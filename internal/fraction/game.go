package fraction

import (
	"fmt"
	"math"

	"github.com/jask/guesstimate/internal/round"
)

// Neutral is where every round's guess starts.
const Neutral = 0.5

// Game is one fraction round, owned by a single view.
type Game struct {
	rng  Rand
	unit Unit

	target   Ratio
	current  float64
	dragging bool
	grade    Grade
	shown    bool
}

// NewGame starts the first round.
func NewGame(rng Rand, unit Unit) (*Game, error) {
	g := &Game{rng: rng, unit: unit}
	if err := g.NewRound(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Target() Ratio    { return g.target }
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

// Diff is the absolute error between target and guess.
func (g *Game) Diff() float64 {
	return math.Abs(g.target.Float() - g.current)
}

// Dims is the bar layout for this frame.
func (g *Game) Dims() Dims {
	return Bar(g.current, g.target)
}

// PointerDown grabs the handle unless the round is submitted.
func (g *Game) PointerDown() bool {
	if g.shown {
		return false
	}
	g.dragging = true
	return true
}

// PointerMove sets the guess from a scene x coordinate while dragging.
func (g *Game) PointerMove(x float64) bool {
	if !g.dragging || g.shown {
		return false
	}
	g.current = FromPointer(x-BarX, BarWidth)
	return true
}

// PointerUp releases the handle.
func (g *Game) PointerUp() {
	g.dragging = false
}

// Submit grades the guess and freezes the round.
func (g *Game) Submit() (Grade, bool) {
	if g.shown {
		return g.grade, false
	}
	g.dragging = false
	g.grade = GradeFor(g.Diff())
	g.shown = true
	return g.grade, true
}

// NewRound draws a new target and puts the guess back at Neutral.
func (g *Game) NewRound() error {
	target, err := NewTarget(g.rng)
	if err != nil {
		return fmt.Errorf("new fraction target: %w", err)
	}
	g.target = target
	g.current = Neutral
	g.dragging = false
	g.grade = GradeNone
	g.shown = false
	return nil
}

// ToggleUnit switches between fraction and decimal display and clears any
// shown score.
func (g *Game) ToggleUnit() {
	g.unit = g.unit.Toggle()
	g.grade = GradeNone
	g.shown = false
}

// Nudge moves the guess by delta through the drag transitions. A drag
// already in progress stays held.
func (g *Game) Nudge(delta float64) bool {
	held := g.dragging
	if !g.PointerDown() {
		return false
	}
	if !held {
		defer g.PointerUp()
	}
	return g.PointerMove(BarX + (g.current+delta)*BarWidth)
}

// OnHandle reports whether scene point (x, y) is over the drag handle.
func (g *Game) OnHandle(x, y, slack float64) bool {
	hx := g.Dims().HandleX()
	if y < BarY-slack || y > BarY+BarHeight+slack {
		return false
	}
	return x >= hx-slack && x <= hx+HandleWidth+slack
}
