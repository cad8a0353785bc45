package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/guesstimate/internal/theme"
)

func TestNewViewportKeepsProportions(t *testing.T) {
	t.Parallel()

	vp := NewViewport(60, 300, 300)
	require.Equal(t, 60, vp.Cols)
	require.Equal(t, 30, vp.Rows)
	require.Equal(t, 5.0, vp.CellWidth())
	require.Equal(t, 10.0, vp.CellHeight())
}

func TestViewportRoundTrip(t *testing.T) {
	t.Parallel()

	vp := NewViewport(60, 300, 300)
	for _, c := range [][2]int{{0, 0}, {30, 15}, {59, 29}, {12, 3}} {
		col, row := vp.ToCell(vp.ToScene(c[0], c[1]))
		require.Equal(t, c[0], col)
		require.Equal(t, c[1], row)
	}
	col, row := vp.ToCell(Point{X: 150, Y: 150})
	require.Equal(t, 30, col)
	require.Equal(t, 15, row)
	require.False(t, vp.Contains(-1, 0))
	require.False(t, vp.Contains(60, 0))
}

func TestLineEndpointsAndRunes(t *testing.T) {
	t.Parallel()

	g := NewGrid(NewViewport(60, 300, 300))
	g.Line(Point{X: 150, Y: 150}, Point{X: 250, Y: 150}, InkLine)
	r, ink := g.At(30, 15)
	require.Equal(t, '─', r)
	require.Equal(t, InkLine, ink)
	r, _ = g.At(50, 15)
	require.Equal(t, '─', r)

	g.Line(Point{X: 150, Y: 150}, Point{X: 150, Y: 50}, InkGuess)
	r, ink = g.At(30, 5)
	require.Equal(t, '│', r)
	require.Equal(t, InkGuess, ink)
}

func TestStrokeAndFillRect(t *testing.T) {
	t.Parallel()

	g := NewGrid(NewViewport(60, 300, 300))
	g.FillRect(20, 100, 130, 100, '░', InkFill)
	g.StrokeRect(20, 100, 260, 100, InkLine)

	r, _ := g.At(4, 10)
	require.Equal(t, '┌', r)
	r, _ = g.At(56, 20)
	require.Equal(t, '┘', r)
	r, ink := g.At(10, 15)
	require.Equal(t, '░', r)
	require.Equal(t, InkFill, ink)
	r, _ = g.At(40, 15)
	require.Equal(t, ' ', r)
}

func TestRenderDimensions(t *testing.T) {
	t.Parallel()

	g := NewGrid(NewViewport(40, 300, 300))
	g.Text(2, 1, "hi", InkTarget)
	out := g.Render(theme.DarkPalette())
	require.Equal(t, 40, lipgloss.Width(out))
	require.Equal(t, 20, lipgloss.Height(out))
	require.True(t, strings.Contains(g.String(), "hi"))
}
