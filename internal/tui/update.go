package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/button"
	"github.com/jask/guesstimate/internal/canvas"
	"github.com/jask/guesstimate/internal/config"
)

const (
	defaultWidth  = 80
	defaultHeight = 40

	maxCanvasCols = 60
	minCanvasCols = 20

	headerRow   = 0
	canvasTop   = 5
	canvasLeft  = 0
	chromeRows  = 10
	buttonGap   = 2
	headerGap   = 2
	sceneExtent = 300.0
)

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	fit := int(canvas.CellAspect) * (h - chromeRows)
	cols := min(maxCanvasCols, w-2, fit)
	// Narrow terminals get the minimum width only while the rows still fit.
	cols = max(cols, min(minCanvasCols, fit))
	cols = max(cols-cols%2, 2)
	a.vp = canvas.NewViewport(cols, sceneExtent, sceneExtent)
	a.help.Width = w
}

// buttonRow is the screen row the button bar is drawn on, below whatever the
// figure block occupies.
func (a *App) buttonRow() int {
	if !a.showHistory {
		return canvasTop + a.vp.Rows + 1
	}
	return canvasTop + lipgloss.Height(a.figureBlock()) + 1
}

func (a *App) showScore() bool {
	if a.active == config.GameAngle {
		return a.angle.ShowScore()
	}
	return a.fraction.ShowScore()
}

// buttons builds the Submit/New Game row. emit receives the command an
// action produced.
func (a *App) buttons(emit func(tea.Cmd)) button.Bar {
	if emit == nil {
		emit = func(tea.Cmd) {}
	}
	return button.Bar{Gap: buttonGap, Buttons: []button.Button{
		{Label: "Submit", Variant: button.Primary, Disabled: a.showScore(), OnPress: func() { emit(a.submit()) }},
		{Label: "New Game", Variant: button.Secondary, OnPress: func() { emit(a.newRound()) }},
	}}
}

func (a *App) pressButton(idx int) tea.Cmd {
	var cmd tea.Cmd
	bar := a.buttons(func(c tea.Cmd) { cmd = c })
	if idx < 0 || idx >= len(bar.Buttons) {
		return nil
	}
	bar.Buttons[idx].Press()
	return cmd
}

func (a *App) toggleButton(emit func(tea.Cmd)) button.Button {
	if emit == nil {
		emit = func(tea.Cmd) {}
	}
	label := a.angle.Unit().String()
	if a.active == config.GameFraction {
		label = a.fraction.Unit().String()
	}
	return button.Button{Label: label, Variant: button.Secondary, OnPress: func() { emit(a.toggleUnit()) }}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Switch):
		a.switchGame()
		cmds := []tea.Cmd{a.savePrefsCmd()}
		if a.showHistory {
			cmds = append(cmds, a.loadHistoryCmd())
		}
		return a, tea.Batch(cmds...)
	case key.Matches(m, a.keys.Unit):
		return a, a.toggleUnit()
	case key.Matches(m, a.keys.Submit):
		return a, a.pressButton(0)
	case key.Matches(m, a.keys.NewRound):
		return a, a.pressButton(1)
	case key.Matches(m, a.keys.Left):
		a.nudge(-1)
	case key.Matches(m, a.keys.Right):
		a.nudge(1)
	case key.Matches(m, a.keys.History):
		a.showHistory = !a.showHistory
		if a.showHistory {
			return a, a.loadHistoryCmd()
		}
	case key.Matches(m, a.keys.Export):
		return a, a.exportCmd()
	}
	return a, nil
}

func (a *App) nudge(dir float64) {
	if a.active == config.GameAngle {
		a.angle.Nudge(dir)
		return
	}
	a.fraction.Nudge(dir / 100)
}

// scenePoint maps a terminal cell to scene units when it lies on the canvas.
func (a *App) scenePoint(col, row int) (canvas.Point, bool) {
	c, r := col-canvasLeft, row-canvasTop
	if !a.vp.Contains(c, r) {
		return canvas.Point{}, false
	}
	return a.vp.ToScene(c, r), true
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return nil
		}
		return a.press(m.X, m.Y)
	case tea.MouseActionMotion:
		p, ok := a.scenePoint(m.X, m.Y)
		if !ok {
			// Leaving the canvas ends the drag.
			a.releaseDrag()
			return nil
		}
		if a.active == config.GameAngle {
			a.angle.PointerMove(angle.Point{X: p.X, Y: p.Y})
		} else {
			a.fraction.PointerMove(p.X)
		}
	case tea.MouseActionRelease:
		a.releaseDrag()
	}
	return nil
}

func (a *App) press(col, row int) tea.Cmd {
	if row == headerRow {
		start := a.toggleCol()
		var cmd tea.Cmd
		tb := a.toggleButton(func(c tea.Cmd) { cmd = c })
		if col >= start && col < start+tb.Width() {
			tb.Press()
		}
		return cmd
	}
	if row == a.buttonRow() {
		return a.pressButton(a.buttons(nil).HitTest(col - canvasLeft))
	}
	p, ok := a.scenePoint(col, row)
	if !ok {
		return nil
	}
	slack := max(a.vp.CellWidth(), a.vp.CellHeight())
	if a.active == config.GameAngle {
		if a.angle.OnHandle(angle.Point{X: p.X, Y: p.Y}, slack) {
			a.angle.PointerDown()
		}
		return nil
	}
	if a.fraction.OnHandle(p.X, p.Y, slack) {
		a.fraction.PointerDown()
	}
	return nil
}
