package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/fraction"
	"github.com/jask/guesstimate/internal/random"
	"github.com/jask/guesstimate/internal/svgexport"
	"github.com/jask/guesstimate/internal/theme"
)

var (
	exportOut   string
	exportGuess float64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Play one scripted round and write it as SVG",
	Long: `Rolls a target, optionally moves the handle to --guess and submits, then
writes the figure as an SVG document. The guess is in degrees for the angle
game and in [0, 1] for the fraction game.

Examples:
  guesstimate export --game angle --seed 7 --guess 45 --out angle.svg
  guesstimate export --game fraction --guess 0.25 > bar.svg`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output file (- for stdout)")
	exportCmd.Flags().Float64Var(&exportGuess, "guess", 0, "guess to submit; without it the round is left unsubmitted")
}

func runExport(cmd *cobra.Command, _ []string) error {
	game := flagGame
	if game == "" {
		game = cfg.UI.StartGame
	}
	rng, seed, err := random.FromSeedOrCrypto(flagSeed)
	if err != nil {
		return err
	}
	mode, _ := theme.ParseMode(cfg.UI.Theme)
	opts := svgexport.Options{
		Palette:    theme.Detect(mode),
		Thresholds: fraction.Thresholds{OneAbove: cfg.Fraction.OneAbove, ZeroBelow: cfg.Fraction.ZeroBelow},
	}
	submit := cmd.Flags().Changed("guess")

	var buf bytes.Buffer
	var summary string
	switch game {
	case config.GameAngle:
		unit := angle.Degrees
		if cfg.UI.Radians {
			unit = angle.Radians
		}
		g := angle.NewGame(rng, unit)
		if submit {
			g.PointerDown()
			g.PointerMove(angle.PointAt(angle.Center, angle.ArmLength, angle.FromDegrees(exportGuess)))
			g.PointerUp()
			grade, _ := g.Submit()
			summary = fmt.Sprintf("Target %s, guess %s: %s", angle.Format(g.Target(), unit), angle.Format(g.Current(), unit), grade)
		}
		err = svgexport.Angle(&buf, g, opts)
	default:
		unit := fraction.Fractional
		if cfg.UI.Decimal {
			unit = fraction.Decimal
		}
		g, gerr := fraction.NewGame(rng, unit)
		if gerr != nil {
			return gerr
		}
		if submit {
			g.PointerDown()
			g.PointerMove(fraction.BarX + exportGuess*fraction.BarWidth)
			g.PointerUp()
			grade, _ := g.Submit()
			summary = fmt.Sprintf("Target %s, guess %s: %s", fraction.FormatTarget(g.Target(), unit), fraction.Format(g.Current(), unit, opts.Thresholds), grade)
		}
		err = svgexport.Fraction(&buf, g, opts)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), exportOut, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("exported round", zap.String("game", game), zap.Uint64("seed", seed), zap.String("out", exportOut))
	if summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}
	return nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
