package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/guesstimate/internal/random"
	"github.com/jask/guesstimate/internal/round"
)

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

func TestNewGameStartsIdle(t *testing.T) {
	t.Parallel()

	g := NewGame(random.New(1), Degrees)
	require.Equal(t, round.Idle, g.Phase())
	require.GreaterOrEqual(t, g.Current(), math.Pi/2)
	require.LessOrEqual(t, g.Current(), 3*math.Pi/4)
	grade, ok := g.Score()
	require.False(t, ok)
	require.Equal(t, GradeNone, grade)
}

func TestNewTarget(t *testing.T) {
	t.Parallel()

	require.Equal(t, math.Pi/2, NewTarget(fixedRand{n: 90}, Degrees))
	require.Equal(t, 3.14, NewTarget(fixedRand{f: 0.5}, Radians))

	rng := random.New(9)
	for i := 0; i < 200; i++ {
		d := NormalizeDegrees(NewTarget(rng, Degrees))
		require.InDelta(t, math.Round(d), d, 1e-9)
	}
}

func TestDragOnlyWhileHeld(t *testing.T) {
	t.Parallel()

	g := NewGame(fixedRand{n: 90}, Degrees)
	start := g.Current()

	require.False(t, g.PointerMove(Point{X: 250, Y: 150}))
	require.Equal(t, start, g.Current())

	require.True(t, g.PointerDown())
	require.Equal(t, round.Dragging, g.Phase())
	require.True(t, g.PointerMove(Point{X: 250, Y: 150}))
	require.Equal(t, 0.0, g.Current())

	g.PointerUp()
	require.Equal(t, round.Idle, g.Phase())
	require.False(t, g.PointerMove(Point{X: 150, Y: 50}))
	require.Equal(t, 0.0, g.Current())
}

func TestSubmitEndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		point Point
		want  Grade
	}{
		{"exact", Point{X: 150, Y: 50}, GradePerfection},
		{"six under", PointAt(Center, ArmLength, deg(84)), GradeExcellent},
		{"six over", PointAt(Center, ArmLength, deg(96)), GradeExcellent},
		{"forty five off", Point{X: 250, Y: 50}, GradeNotGreat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(fixedRand{n: 90}, Degrees)
			require.Equal(t, math.Pi/2, g.Target())
			require.True(t, g.PointerDown())
			require.True(t, g.PointerMove(tt.point))
			g.PointerUp()

			grade, ok := g.Submit()
			require.True(t, ok)
			require.Equal(t, tt.want, grade)
			require.Equal(t, round.Submitted, g.Phase())
		})
	}
}

func TestSubmittedRoundIsFrozen(t *testing.T) {
	t.Parallel()

	g := NewGame(fixedRand{n: 90}, Degrees)
	first, ok := g.Submit()
	require.True(t, ok)

	_, ok = g.Submit()
	require.False(t, ok)
	require.False(t, g.PointerDown())
	require.False(t, g.Nudge(10))

	got, shown := g.Score()
	require.True(t, shown)
	require.Equal(t, first, got)
}

func TestNewRoundAlwaysClearsScore(t *testing.T) {
	t.Parallel()

	g := NewGame(random.New(3), Degrees)
	g.PointerDown()
	g.NewRound()
	require.False(t, g.ShowScore())
	require.False(t, g.Dragging())

	g.Submit()
	g.NewRound()
	grade, shown := g.Score()
	require.False(t, shown)
	require.Equal(t, GradeNone, grade)
	require.Equal(t, round.Idle, g.Phase())
}

func TestToggleUnitKeepsTargetAndClearsScore(t *testing.T) {
	t.Parallel()

	g := NewGame(random.New(5), Degrees)
	target := g.Target()
	g.Submit()

	g.ToggleUnit()
	require.Equal(t, Radians, g.Unit())
	require.Equal(t, target, g.Target())
	require.False(t, g.ShowScore())
	require.True(t, g.PointerDown())
}

func TestNudgeUsesDragPath(t *testing.T) {
	t.Parallel()

	g := NewGame(fixedRand{n: 0, f: 0}, Degrees)
	before := NormalizeDegrees(g.Current())
	require.True(t, g.Nudge(1))
	require.False(t, g.Dragging())
	require.InDelta(t, before+1, NormalizeDegrees(g.Current()), 1e-6)
}

func TestNudgeKeepsMouseDrag(t *testing.T) {
	t.Parallel()

	g := NewGame(fixedRand{f: 0}, Degrees)
	require.True(t, g.PointerDown())
	require.True(t, g.Nudge(-2))
	require.True(t, g.Dragging())
	require.InDelta(t, 88, NormalizeDegrees(g.Current()), 1e-6)

	require.True(t, g.PointerMove(Point{X: 250, Y: 150}))
	require.InDelta(t, 0, NormalizeDegrees(g.Current()), 1e-6)
}

func TestOnHandle(t *testing.T) {
	t.Parallel()

	g := NewGame(fixedRand{f: 0}, Degrees)
	end := g.Layout().MovableEnd
	require.True(t, g.OnHandle(end, 0))
	require.True(t, g.OnHandle(Point{X: end.X + 8, Y: end.Y}, 3))
	require.False(t, g.OnHandle(Center, 3))
}
