package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/theme"
)

var (
	// Global flags
	flagGame string
	flagSeed uint64

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "guesstimate",
	Short: "Angle and fraction estimation games for the terminal",
	Long: `guesstimate shows a target angle or fraction and asks you to drag a
handle until the figure matches it. Submit to see how close you got.

Run without arguments to play.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if _, err := theme.ParseMode(cfg.UI.Theme); err != nil {
			return fmt.Errorf("config: ui.theme: %w", err)
		}
		if flagGame != "" {
			g, err := config.ResolveGame(flagGame)
			if err != nil {
				return err
			}
			flagGame = g
		}
		logger, err = newLogger(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagGame, "game", "g", "", "game to use: angle or fraction")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "seed for target rolls (0 picks a random seed)")
	rootCmd.Flags().String("export-dir", ".", "directory the e key writes SVG files to")

	rootCmd.AddCommand(historyCmd, exportCmd, configCmd)
}

// newLogger writes JSON logs to lc.Path. The terminal belongs to the game,
// so without a path nothing is logged.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	if lc.Path == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{lc.Path}
	zc.ErrorOutputPaths = []string{lc.Path}
	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
