package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/svgexport"
)

// commands run off the update loop, so they only capture values computed
// before they are returned.

func (a *App) recordCmd(rd repository.Round) tea.Cmd {
	if a.deps.Rounds == nil {
		return nil
	}
	store := a.deps.Rounds
	ctx := a.ctx
	reload := a.showHistory
	return func() tea.Msg {
		if _, err := store.Insert(ctx, rd); err != nil {
			return errMsg{fmt.Errorf("record round: %w", err)}
		}
		if reload {
			return loadHistory(ctx, store, rd.Game)
		}
		return nil
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	if a.deps.Rounds == nil {
		return nil
	}
	store, ctx, game := a.deps.Rounds, a.ctx, a.active
	return func() tea.Msg {
		return loadHistory(ctx, store, game)
	}
}

func loadHistory(ctx context.Context, store RoundStore, game string) tea.Msg {
	rounds, err := store.Recent(ctx, repository.RoundFilters{Game: game, Limit: historyLimit})
	if err != nil {
		return errMsg{fmt.Errorf("load history: %w", err)}
	}
	counts, err := store.GradeCounts(ctx, game)
	if err != nil {
		return errMsg{fmt.Errorf("load history: %w", err)}
	}
	return historyMsg{game: game, rounds: rounds, counts: counts}
}

func (a *App) savePrefsCmd() tea.Cmd {
	if a.deps.Prefs == nil {
		return nil
	}
	saver, p := a.deps.Prefs, a.currentPrefs()
	return func() tea.Msg {
		if err := saver.Save(p); err != nil {
			return errMsg{fmt.Errorf("save prefs: %w", err)}
		}
		return nil
	}
}

func (a *App) exportCmd() tea.Cmd {
	var buf bytes.Buffer
	opts := svgexport.Options{Palette: a.palette, Thresholds: a.thresh}
	var err error
	if a.active == config.GameAngle {
		err = svgexport.Angle(&buf, a.angle, opts)
	} else {
		err = svgexport.Fraction(&buf, a.fraction, opts)
	}
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	dir := a.deps.ExportDir
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("guesstimate-%s-%s.svg", a.active, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	log := a.log
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errMsg{fmt.Errorf("export: %w", err)}
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return errMsg{fmt.Errorf("export: %w", err)}
		}
		log.Info("exported round", zap.String("path", path))
		return statusMsg("exported " + path)
	}
}
