package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/fraction"
	"github.com/jask/guesstimate/internal/random"
	"github.com/jask/guesstimate/internal/testdata"
)

var (
	historyLimit  int
	historyFormat string
	historyStats  bool
	seedRounds    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded rounds",
	Long: `Lists the most recent submitted rounds, newest first.

Examples:
  guesstimate history --game angle --limit 5
  guesstimate history --format yaml
  guesstimate history --stats --game fraction`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded round",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Record simulated rounds, for trying out the history views",
	Args:  cobra.NoArgs,
	RunE:  runHistorySeed,
}

func init() {
	historySeedCmd.Flags().IntVar(&seedRounds, "rounds", 20, "number of rounds to simulate")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum rounds to list (0 lists all)")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "table", "output format: table, json or yaml")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "print grade counts instead of rounds")
	historyCmd.AddCommand(historyClearCmd, historySeedCmd)
}

func openHistory() (*sql.DB, error) {
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history is disabled (set history.enabled in %s)", config.Path())
	}
	db, err := database.OpenMigrated(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return db, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := repository.NewRoundRepo(db)
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if historyStats {
		return writeStats(ctx, out, repo, flagGame)
	}
	rounds, err := repo.Recent(ctx, repository.RoundFilters{Game: flagGame, Limit: historyLimit})
	if err != nil {
		return err
	}
	return writeRounds(out, rounds, historyFormat)
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()
	n, err := repository.NewRoundRepo(db).Clear(commandContext(cmd))
	if err != nil {
		return err
	}
	logger.Info("history cleared", zap.Int64("rounds", n))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d rounds\n", n)
	return nil
}

func runHistorySeed(cmd *cobra.Command, _ []string) error {
	if seedRounds < 1 {
		return fmt.Errorf("--rounds must be positive, got %d", seedRounds)
	}
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()
	rng, seed, err := random.FromSeedOrCrypto(flagSeed)
	if err != nil {
		return err
	}
	repo := repository.NewRoundRepo(db)
	if err := testdata.Seed(commandContext(cmd), repo, rng, seedRounds, time.Now()); err != nil {
		return fmt.Errorf("seed history: %w", err)
	}
	logger.Info("history seeded", zap.Int("rounds", seedRounds), zap.Uint64("seed", seed))
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %d rounds\n", seedRounds)
	return nil
}

func writeRounds(w io.Writer, rounds []repository.Round, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if rounds == nil {
			rounds = []repository.Round{}
		}
		return enc.Encode(rounds)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rounds); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		if len(rounds) == 0 {
			_, err := fmt.Fprintln(w, "no rounds recorded")
			return err
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "GAME", "TARGET", "GUESS", "DIFF", "GRADE")
		for _, r := range rounds {
			t.Row(
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Game,
				r.Target,
				r.Guess,
				strconv.FormatFloat(r.Difference, 'f', 2, 64),
				r.Grade,
			)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}
	return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

type gradeCounter interface {
	GradeCounts(ctx context.Context, game string) (map[string]int, error)
}

func writeStats(ctx context.Context, w io.Writer, repo gradeCounter, game string) error {
	games := config.Games
	if game != "" {
		games = []string{game}
	}
	for i, g := range games {
		counts, err := repo.GradeCounts(ctx, g)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g)
		for _, grade := range gradeNames(g) {
			fmt.Fprintf(w, "  %-13s %d\n", grade, counts[grade])
		}
	}
	return nil
}

func gradeNames(game string) []string {
	var out []string
	if game == config.GameFraction {
		for _, g := range fraction.Grades {
			out = append(out, string(g))
		}
		return out
	}
	for _, g := range angle.Grades {
		out = append(out, string(g))
	}
	return out
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
