package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/guesstimate/internal/theme"
)

// Ink is the semantic color of a cell.
type Ink int

const (
	InkNone Ink = iota
	InkLine
	InkMuted
	InkGuess
	InkFill
	InkTarget
)

type cell struct {
	r   rune
	ink Ink
}

// Grid is a rune raster addressed in scene units through its Viewport.
type Grid struct {
	vp    Viewport
	cells []cell
}

// NewGrid returns a blank grid for vp.
func NewGrid(vp Viewport) *Grid {
	g := &Grid{vp: vp, cells: make([]cell, vp.Cols*vp.Rows)}
	g.Clear()
	return g
}

// Viewport returns the mapping the grid draws through.
func (g *Grid) Viewport() Viewport { return g.vp }

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' '}
	}
}

// Set writes one cell; positions off the grid are ignored.
func (g *Grid) Set(col, row int, r rune, ink Ink) {
	if !g.vp.Contains(col, row) {
		return
	}
	g.cells[row*g.vp.Cols+col] = cell{r: r, ink: ink}
}

// At returns the rune and ink at a cell.
func (g *Grid) At(col, row int) (rune, Ink) {
	if !g.vp.Contains(col, row) {
		return 0, InkNone
	}
	c := g.cells[row*g.vp.Cols+col]
	return c.r, c.ink
}

// Line draws a straight segment between two scene points with a rune chosen
// from its slope.
func (g *Grid) Line(a, b Point, ink Ink) {
	c0, r0 := g.vp.ToCell(a)
	c1, r1 := g.vp.ToCell(b)
	g.cellLine(c0, r0, c1, r1, slopeRune(c1-c0, r1-r0), ink)
}

// LineRune draws a segment with a fixed rune.
func (g *Grid) LineRune(a, b Point, r rune, ink Ink) {
	c0, r0 := g.vp.ToCell(a)
	c1, r1 := g.vp.ToCell(b)
	g.cellLine(c0, r0, c1, r1, r, ink)
}

// Polyline joins consecutive points.
func (g *Grid) Polyline(pts []Point, r rune, ink Ink) {
	for i := 1; i < len(pts); i++ {
		g.LineRune(pts[i-1], pts[i], r, ink)
	}
}

// Dot marks the cell under p.
func (g *Grid) Dot(p Point, r rune, ink Ink) {
	c, row := g.vp.ToCell(p)
	g.Set(c, row, r, ink)
}

// FillRect paints every cell whose center lies inside the scene rectangle.
func (g *Grid) FillRect(x, y, w, h float64, r rune, ink Ink) {
	for row := 0; row < g.vp.Rows; row++ {
		for col := 0; col < g.vp.Cols; col++ {
			p := g.vp.ToScene(col, row)
			if p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h {
				g.Set(col, row, r, ink)
			}
		}
	}
}

// StrokeRect outlines a scene rectangle with box-drawing runes.
func (g *Grid) StrokeRect(x, y, w, h float64, ink Ink) {
	c0, r0 := g.vp.ToCell(Point{X: x, Y: y})
	c1, r1 := g.vp.ToCell(Point{X: x + w, Y: y + h})
	for c := c0 + 1; c < c1; c++ {
		g.Set(c, r0, '─', ink)
		g.Set(c, r1, '─', ink)
	}
	for r := r0 + 1; r < r1; r++ {
		g.Set(c0, r, '│', ink)
		g.Set(c1, r, '│', ink)
	}
	g.Set(c0, r0, '┌', ink)
	g.Set(c1, r0, '┐', ink)
	g.Set(c0, r1, '└', ink)
	g.Set(c1, r1, '┘', ink)
}

// Text writes s starting at a cell.
func (g *Grid) Text(col, row int, s string, ink Ink) {
	for i, r := range []rune(s) {
		g.Set(col+i, row, r, ink)
	}
}

// Render styles each run of equal ink and joins the rows.
func (g *Grid) Render(p theme.Palette) string {
	styles := map[Ink]lipgloss.Style{
		InkNone:   lipgloss.NewStyle(),
		InkLine:   lipgloss.NewStyle().Foreground(p.Line),
		InkMuted:  lipgloss.NewStyle().Foreground(p.Muted),
		InkGuess:  lipgloss.NewStyle().Foreground(p.Guess).Bold(true),
		InkFill:   lipgloss.NewStyle().Foreground(p.Guess).Background(p.Fill),
		InkTarget: lipgloss.NewStyle().Foreground(p.Target).Bold(true),
	}

	var out strings.Builder
	var run strings.Builder
	for row := 0; row < g.vp.Rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		cur := InkNone
		run.Reset()
		for col := 0; col < g.vp.Cols; col++ {
			c := g.cells[row*g.vp.Cols+col]
			if c.ink != cur && run.Len() > 0 {
				out.WriteString(styles[cur].Render(run.String()))
				run.Reset()
			}
			cur = c.ink
			run.WriteRune(c.r)
		}
		if run.Len() > 0 {
			out.WriteString(styles[cur].Render(run.String()))
		}
	}
	return out.String()
}

// String is the raster without styling.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.vp.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.vp.Cols; col++ {
			b.WriteRune(g.cells[row*g.vp.Cols+col].r)
		}
	}
	return b.String()
}

// cellLine is Bresenham over cells.
func (g *Grid) cellLine(c0, r0, c1, r1 int, r rune, ink Ink) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		g.Set(c0, r0, r, ink)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func slopeRune(dc, dr int) rune {
	ac, ar := abs(dc), abs(dr)
	switch {
	case ac == 0 && ar == 0:
		return '•'
	case ar*2 < ac:
		return '─'
	case ac*2 < ar:
		return '│'
	case (dc > 0) == (dr > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
