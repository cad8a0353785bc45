package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/canvas"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/fraction"
)

const (
	arcSteps     = 32
	historyLimit = 8
)

func (a *App) title() string {
	if a.active == config.GameFraction {
		return "Fraction Estimation Game"
	}
	return "Angle Estimation Game"
}

func (a *App) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(a.palette.Text)
}

func (a *App) toggleCol() int {
	return lipgloss.Width(a.titleStyle().Render(a.title())) + headerGap
}

func (a *App) textLines() (target, prompt string) {
	if a.active == config.GameFraction {
		g := a.fraction
		target = "Target Fraction: " + fraction.FormatTarget(g.Target(), g.Unit())
		prompt = "Drag the handle to match the target fraction"
		if grade, ok := g.Score(); ok {
			prompt = fmt.Sprintf("Your Fraction: %s — %s", fraction.Format(g.Current(), g.Unit(), a.thresh), grade)
		}
		return target, prompt
	}
	g := a.angle
	target = "Target Angle: " + angle.Format(g.Target(), g.Unit())
	prompt = "Drag the dot to match the target angle"
	if grade, ok := g.Score(); ok {
		prompt = fmt.Sprintf("Your Angle: %s — %s", angle.Format(g.Current(), g.Unit()), grade)
	}
	return target, prompt
}

func (a *App) render() string {
	p := a.palette
	text := lipgloss.NewStyle().Foreground(p.Text)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	header := a.titleStyle().Render(a.title()) + strings.Repeat(" ", headerGap) + a.toggleButton(nil).Render(p)
	target, prompt := a.textLines()
	promptStyle := muted
	if a.showScore() {
		promptStyle = lipgloss.NewStyle().Foreground(p.Target).Bold(true)
	}

	status := a.status
	if status == "" {
		status = a.phaseLabel()
	}
	statusStyle := muted
	if strings.HasPrefix(a.status, "error:") {
		statusStyle = lipgloss.NewStyle().Foreground(p.Error)
	}

	lines := []string{
		header,
		"",
		text.Render(target),
		promptStyle.Render(prompt),
		"",
		a.figureBlock(),
		"",
		a.buttons(nil).Render(p),
		"",
		statusStyle.Render(status),
		a.help.View(a.keys),
	}
	return strings.Join(lines, "\n")
}

// figureBlock is the canvas, with the history pane beside it when shown.
// The pane may be taller than the canvas.
func (a *App) figureBlock() string {
	figure := a.drawFigure().Render(a.palette)
	if a.showHistory {
		figure = lipgloss.JoinHorizontal(lipgloss.Top, figure, "  ", a.renderHistory())
	}
	return figure
}

func (a *App) phaseLabel() string {
	if a.active == config.GameFraction {
		return a.fraction.Phase().String()
	}
	return a.angle.Phase().String()
}

func pt(p angle.Point) canvas.Point { return canvas.Point{X: p.X, Y: p.Y} }

func pts(in []angle.Point) []canvas.Point {
	out := make([]canvas.Point, len(in))
	for i, p := range in {
		out[i] = pt(p)
	}
	return out
}

// drawFigure rasterizes the active game. It reads state only.
func (a *App) drawFigure() *canvas.Grid {
	grid := canvas.NewGrid(a.vp)
	if a.active == config.GameFraction {
		a.drawBar(grid)
	} else {
		a.drawAngle(grid)
	}
	return grid
}

func (a *App) drawAngle(grid *canvas.Grid) {
	g := a.angle
	l := g.Layout()

	grid.Polyline(pts(angle.ArcPoints(l.Center, angle.ArcRadius, g.Current(), arcSteps)), '·', canvas.InkGuess)
	grid.Line(pt(l.Center), pt(l.FixedEnd), canvas.InkLine)
	grid.Line(pt(l.Center), pt(l.MovableEnd), canvas.InkGuess)
	if g.ShowScore() {
		grid.Polyline(pts(angle.ArcPoints(l.Center, angle.TargetArcRadius, g.Target(), arcSteps)), '·', canvas.InkTarget)
		grid.Line(pt(l.Center), pt(l.TargetBaseEnd), canvas.InkTarget)
		grid.Line(pt(l.Center), pt(l.TargetEnd), canvas.InkTarget)
	}
	grid.Dot(pt(l.Center), '+', canvas.InkLine)
	handle := '●'
	if g.Dragging() {
		handle = '◉'
	}
	grid.Dot(pt(l.MovableEnd), handle, canvas.InkGuess)
}

func (a *App) drawBar(grid *canvas.Grid) {
	g := a.fraction
	d := g.Dims()
	top := fraction.BarY
	bottom := fraction.BarY + d.Height

	grid.FillRect(fraction.BarX, top, d.FillWidth, d.Height, '░', canvas.InkFill)
	grid.StrokeRect(fraction.BarX, top, d.Width, d.Height, canvas.InkLine)

	hx := fraction.BarX + d.FillWidth
	grid.LineRune(canvas.Point{X: hx, Y: top}, canvas.Point{X: hx, Y: bottom}, '┃', canvas.InkGuess)
	if g.ShowScore() {
		tx := fraction.BarX + d.TargetWidth
		grid.LineRune(canvas.Point{X: tx, Y: fraction.MarkerY}, canvas.Point{X: tx, Y: fraction.MarkerY + d.Height + fraction.MarkerExtra - 1}, '┃', canvas.InkTarget)
	}
}

func (a *App) renderHistory() string {
	p := a.palette
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1)
	head := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	if a.deps.Rounds == nil {
		return box.Render(head.Render("History") + "\n" + muted.Render("history is disabled"))
	}
	h := a.history
	if h.game != a.active {
		return box.Render(head.Render("History") + "\n" + muted.Render("loading..."))
	}

	var b strings.Builder
	b.WriteString(head.Render("History · " + h.game))
	b.WriteString("\n")
	for _, g := range gradeOrder(h.game) {
		fmt.Fprintf(&b, "%-13s %3d\n", g, h.counts[g])
	}
	b.WriteString("\n")
	if len(h.rounds) == 0 {
		b.WriteString(muted.Render("no rounds yet"))
	}
	for i, r := range h.rounds {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(muted.Render(fmt.Sprintf("%s → %s  %s", r.Target, r.Guess, r.Grade)))
	}
	return box.Render(b.String())
}

func gradeOrder(game string) []string {
	if game == config.GameFraction {
		out := make([]string, len(fraction.Grades))
		for i, g := range fraction.Grades {
			out[i] = string(g)
		}
		return out
	}
	out := make([]string, len(angle.Grades))
	for i, g := range angle.Grades {
		out[i] = string(g)
	}
	return out
}
