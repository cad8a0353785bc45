package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/prefs"
	"github.com/jask/guesstimate/internal/random"
	"github.com/jask/guesstimate/internal/theme"
	"github.com/jask/guesstimate/internal/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	exportDir, _ := cmd.Flags().GetString("export-dir")

	play := cfg
	var saver tui.PrefsSaver
	if store, err := prefs.DefaultStore(); err != nil {
		logger.Warn("prefs unavailable", zap.Error(err))
	} else {
		saver = store
		applyPrefs(&play, store)
	}
	if flagGame != "" {
		play.UI.StartGame = flagGame
	}

	rng, seed, err := random.FromSeedOrCrypto(flagSeed)
	if err != nil {
		return err
	}
	mode, _ := theme.ParseMode(play.UI.Theme)
	deps := tui.Deps{
		Rand:      rng,
		Palette:   theme.Detect(mode),
		Prefs:     saver,
		Logger:    logger,
		ExportDir: exportDir,
	}

	if play.History.Enabled {
		db, err := database.OpenMigrated(play.History.Path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer db.Close()
		deps.Rounds = repository.NewRoundRepo(db)
	}

	app, err := tui.New(ctx, play, deps)
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("game", app.Active()),
		zap.Uint64("seed", seed),
		zap.String("theme", deps.Palette.Name),
		zap.Bool("history", deps.Rounds != nil))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		stopWatch, err := theme.Watch(config.Path(), themeFromConfig,
			func(pal theme.Palette) { p.Send(tui.ThemeMsg{Palette: pal}) },
			func(err error) { logger.Warn("theme watch", zap.Error(err)) })
		if err != nil {
			logger.Warn("theme watch disabled", zap.Error(err))
			return nil
		}
		<-gctx.Done()
		stopWatch()
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// applyPrefs layers the remembered toggles over the config file.
func applyPrefs(c *config.Config, store *prefs.Store) {
	p, ok, err := store.Load()
	if err != nil {
		logger.Warn("load prefs", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	c.UI.Radians = p.Radians
	c.UI.Decimal = p.Decimal
	if g, err := config.ResolveGame(p.Game); err == nil {
		c.UI.StartGame = g
	}
}

func themeFromConfig() (theme.Mode, error) {
	c, err := config.Load()
	if err != nil {
		return "", err
	}
	return theme.ParseMode(c.UI.Theme)
}
