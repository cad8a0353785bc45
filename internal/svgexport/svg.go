// Package svgexport writes a round's figure as a standalone SVG document in
// the same 300×300 user space the terminal canvas is drawn from.
package svgexport

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/fraction"
	"github.com/jask/guesstimate/internal/theme"
)

// Options controls colors and the caption.
type Options struct {
	Palette    theme.Palette
	Thresholds fraction.Thresholds
}

type doc struct {
	b strings.Builder
}

func (d *doc) open(title, desc string, p theme.Palette) {
	d.b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300" viewBox="0 0 300 300">` + "\n")
	fmt.Fprintf(&d.b, "  <title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&d.b, "  <desc>%s</desc>\n", html.EscapeString(desc))
	bg := "#eff1f5"
	if p.Dark {
		bg = "#1e1e2e"
	}
	fmt.Fprintf(&d.b, "  <rect x=\"0\" y=\"0\" width=\"300\" height=\"300\" fill=\"%s\"/>\n", bg)
}

func (d *doc) close() { d.b.WriteString("</svg>\n") }

func (d *doc) line(a, b angle.Point, stroke string, width float64) {
	fmt.Fprintf(&d.b, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		num(a.X), num(a.Y), num(b.X), num(b.Y), stroke, num(width))
}

func (d *doc) path(data, fill, stroke string) {
	fmt.Fprintf(&d.b, "  <path d=\"%s\" fill=\"%s\" fill-opacity=\"0.1\" stroke=\"%s\" stroke-width=\"1\"/>\n", data, fill, stroke)
}

func (d *doc) rect(x, y, w, h float64, fill, stroke string, opacity float64) {
	fmt.Fprintf(&d.b, "  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\"", num(x), num(y), num(w), num(h), fill)
	if opacity > 0 && opacity < 1 {
		fmt.Fprintf(&d.b, " fill-opacity=\"%s\"", num(opacity))
	}
	if stroke != "" {
		fmt.Fprintf(&d.b, " stroke=\"%s\" stroke-width=\"2\"", stroke)
	}
	d.b.WriteString("/>\n")
}

// Angle writes the angle figure. The target arms and wedge only appear once
// the round is submitted.
func Angle(w io.Writer, g *angle.Game, opts Options) error {
	p := opts.Palette
	pts := g.Layout()

	desc := "Target Angle: " + angle.Format(g.Target(), g.Unit())
	if grade, ok := g.Score(); ok {
		desc += "; Your Angle: " + angle.Format(g.Current(), g.Unit()) + " — " + string(grade)
	}

	var d doc
	d.open("Angle Estimation Game", desc, p)
	d.line(pts.Center, pts.FixedEnd, string(p.Line), 2)
	d.line(pts.Center, pts.MovableEnd, string(p.Guess), 2)
	if g.ShowScore() {
		d.line(pts.Center, pts.TargetBaseEnd, string(p.Target), 2)
		d.line(pts.Center, pts.TargetEnd, string(p.Target), 2)
	}
	d.path(angle.ArcPath(pts.Center, angle.ArcRadius, g.Current()), string(p.Guess), string(p.Guess))
	if g.ShowScore() {
		d.path(angle.ArcPath(pts.Center, angle.TargetArcRadius, g.Target()), string(p.Target), string(p.Target))
	}
	fmt.Fprintf(&d.b, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
		num(pts.MovableEnd.X), num(pts.MovableEnd.Y), num(angle.HandleRadius), p.Guess)
	d.close()

	_, err := io.WriteString(w, d.b.String())
	return err
}

// Fraction writes the bar figure.
func Fraction(w io.Writer, g *fraction.Game, opts Options) error {
	p := opts.Palette
	dims := g.Dims()

	desc := "Target Fraction: " + fraction.FormatTarget(g.Target(), g.Unit())
	if grade, ok := g.Score(); ok {
		desc += "; Your Fraction: " + fraction.Format(g.Current(), g.Unit(), opts.Thresholds) + " — " + string(grade)
	}

	var d doc
	d.open("Fraction Estimation Game", desc, p)
	d.rect(fraction.BarX, fraction.BarY, dims.Width, dims.Height, "none", string(p.Line), 0)
	d.rect(fraction.BarX, fraction.BarY, dims.FillWidth, dims.Height, string(p.Guess), "", 0.3)
	d.rect(dims.HandleX(), fraction.BarY, fraction.HandleWidth, dims.Height, string(p.Guess), "", 0)
	if g.ShowScore() {
		d.rect(dims.MarkerX(), fraction.MarkerY, fraction.HandleWidth, dims.Height+fraction.MarkerExtra, string(p.Target), "", 0)
	}
	d.close()

	_, err := io.WriteString(w, d.b.String())
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
