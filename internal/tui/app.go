package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/canvas"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/fraction"
	"github.com/jask/guesstimate/internal/prefs"
	"github.com/jask/guesstimate/internal/theme"
)

// Rand feeds both games' target rolls. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// RoundStore records submitted rounds.
type RoundStore interface {
	Insert(ctx context.Context, r repository.Round) (repository.Round, error)
	Recent(ctx context.Context, f repository.RoundFilters) ([]repository.Round, error)
	GradeCounts(ctx context.Context, game string) (map[string]int, error)
}

// PrefsSaver persists the display toggles.
type PrefsSaver interface {
	Save(p prefs.Prefs) error
}

// Deps are the collaborators App needs. Rounds, Prefs and Logger may be nil.
type Deps struct {
	Rand      Rand
	Palette   theme.Palette
	Rounds    RoundStore
	Prefs     PrefsSaver
	Logger    *zap.Logger
	ExportDir string
}

// App ties together both games and the shared chrome.
type App struct {
	ctx    context.Context
	cfg    config.Config
	deps   Deps
	log    *zap.Logger
	keys   keyMap
	help   help.Model
	thresh fraction.Thresholds

	active   string
	angle    *angle.Game
	fraction *fraction.Game

	palette theme.Palette
	width   int
	height  int
	vp      canvas.Viewport
	status  string

	showHistory bool
	history     historyMsg
}

// New builds the App. It fails only if the first fraction target cannot be
// drawn.
func New(ctx context.Context, cfg config.Config, deps Deps) (*App, error) {
	game, err := config.ResolveGame(cfg.UI.StartGame)
	if err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	aUnit := angle.Degrees
	if cfg.UI.Radians {
		aUnit = angle.Radians
	}
	fUnit := fraction.Fractional
	if cfg.UI.Decimal {
		fUnit = fraction.Decimal
	}
	fg, err := fraction.NewGame(deps.Rand, fUnit)
	if err != nil {
		return nil, fmt.Errorf("start fraction game: %w", err)
	}

	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		deps:     deps,
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		thresh:   fraction.Thresholds{OneAbove: cfg.Fraction.OneAbove, ZeroBelow: cfg.Fraction.ZeroBelow},
		active:   game,
		angle:    angle.NewGame(deps.Rand, aUnit),
		fraction: fg,
		palette:  deps.Palette,
	}
	a.resize(defaultWidth, defaultHeight)
	return a, nil
}

// Active is the game on screen.
func (a *App) Active() string { return a.active }

// Angle exposes the angle round, read-only by convention.
func (a *App) Angle() *angle.Game { return a.angle }

// Fraction exposes the fraction round.
func (a *App) Fraction() *fraction.Game { return a.fraction }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case ThemeMsg:
		a.palette = m.Palette
		a.log.Debug("theme changed", zap.String("theme", m.Palette.Name))
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Warn("command failed", zap.Error(m.error))
	case historyMsg:
		a.history = m
	}
	return a, nil
}

func (a *App) View() string {
	return a.render()
}

// switchGame flips between the two games. Each keeps its own round.
func (a *App) switchGame() {
	a.releaseDrag()
	if a.active == config.GameAngle {
		a.active = config.GameFraction
	} else {
		a.active = config.GameAngle
	}
	a.status = ""
}

func (a *App) releaseDrag() {
	a.angle.PointerUp()
	a.fraction.PointerUp()
}

func (a *App) submit() tea.Cmd {
	var rd repository.Round
	switch a.active {
	case config.GameAngle:
		grade, ok := a.angle.Submit()
		if !ok {
			return nil
		}
		g := a.angle
		rd = repository.Round{
			Game:       config.GameAngle,
			Target:     angle.Format(g.Target(), g.Unit()),
			Guess:      angle.Format(g.Current(), g.Unit()),
			TargetVal:  angle.NormalizeDegrees(g.Target()),
			GuessVal:   angle.NormalizeDegrees(g.Current()),
			Difference: g.Diff(),
			Grade:      string(grade),
			Unit:       g.Unit().String(),
		}
	default:
		grade, ok := a.fraction.Submit()
		if !ok {
			return nil
		}
		g := a.fraction
		rd = repository.Round{
			Game:       config.GameFraction,
			Target:     fraction.FormatTarget(g.Target(), g.Unit()),
			Guess:      fraction.Format(g.Current(), g.Unit(), a.thresh),
			TargetVal:  g.Target().Float(),
			GuessVal:   g.Current(),
			Difference: g.Diff(),
			Grade:      string(grade),
			Unit:       g.Unit().String(),
		}
	}
	a.status = ""
	a.log.Info("round submitted",
		zap.String("game", rd.Game),
		zap.String("target", rd.Target),
		zap.String("guess", rd.Guess),
		zap.Float64("difference", rd.Difference),
		zap.String("grade", rd.Grade))
	return a.recordCmd(rd)
}

func (a *App) newRound() tea.Cmd {
	a.status = ""
	if a.active == config.GameAngle {
		a.angle.NewRound()
		return nil
	}
	if err := a.fraction.NewRound(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return nil
}

func (a *App) toggleUnit() tea.Cmd {
	if a.active == config.GameAngle {
		a.angle.ToggleUnit()
	} else {
		a.fraction.ToggleUnit()
	}
	return a.savePrefsCmd()
}

func (a *App) currentPrefs() prefs.Prefs {
	return prefs.Prefs{
		Radians: a.angle.Unit() == angle.Radians,
		Decimal: a.fraction.Unit() == fraction.Decimal,
		Game:    a.active,
	}
}
