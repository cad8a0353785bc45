package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database"
	"github.com/jask/guesstimate/internal/database/repository"
)

// setupEnv points config and history at a temp dir. Commands share package
// globals, so these tests do not run in parallel.
func setupEnv(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GUESSTIMATE_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("GUESSTIMATE_UI_THEME", "light")
	t.Setenv("GUESSTIMATE_HISTORY_PATH", filepath.Join(dir, "history.db"))
	flagGame, flagSeed = "", 0
	return dir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestExportAngle(t *testing.T) {
	setupEnv(t)

	out, summary, err := execute(t, "export", "--game", "angle", "--seed", "7", "--guess", "45", "--out", "-")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<svg"))
	require.Equal(t, 4, strings.Count(out, "<line"))
	require.Contains(t, summary, "guess 45°")
}

func TestExportFractionToFile(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "bar.svg")

	_, summary, err := execute(t, "export", "--game", "fraction", "--seed", "7", "--guess", "1", "--out", path)
	require.NoError(t, err)
	require.Contains(t, summary, "guess 1: ")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "</svg>")
}

func TestExportUnknownGame(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "export", "--game", "angel", "--out", "-")
	require.ErrorIs(t, err, config.ErrUnknownGame)
	require.Contains(t, err.Error(), `did you mean "angle"?`)
}

func TestHistoryListAndClear(t *testing.T) {
	dir := setupEnv(t)

	db, err := database.OpenMigrated(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	repo := repository.NewRoundRepo(db)
	ctx := context.Background()
	for i, g := range []string{config.GameAngle, config.GameFraction} {
		_, err := repo.Insert(ctx, repository.Round{
			Game: g, Target: "1 / 3", Guess: "0.30", TargetVal: 1.0 / 3, GuessVal: 0.3,
			Difference: 0.03, Grade: "Excellent!", Unit: "fraction",
			CreatedAt: time.Date(2026, 5, 1, 9, i, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	out, _, err := execute(t, "history", "--game", "fraction", "--format", "json")
	require.NoError(t, err)
	var rounds []repository.Round
	require.NoError(t, json.Unmarshal([]byte(out), &rounds))
	require.Len(t, rounds, 1)
	require.Equal(t, config.GameFraction, rounds[0].Game)

	out, _, err = execute(t, "history", "--game", "", "--format", "table")
	require.NoError(t, err)
	require.Contains(t, out, "GRADE")
	require.Equal(t, 2, strings.Count(out, "Excellent!"))

	out, _, err = execute(t, "history", "clear")
	require.NoError(t, err)
	require.Equal(t, "deleted 2 rounds\n", out)
}

func TestHistorySeed(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "history", "seed", "--rounds", "6", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, "recorded 6 rounds\n", out)

	out, _, err = execute(t, "history", "--game", "angle", "--format", "json")
	require.NoError(t, err)
	var rounds []repository.Round
	require.NoError(t, json.Unmarshal([]byte(out), &rounds))
	require.Len(t, rounds, 3)
}

func TestHistoryDisabled(t *testing.T) {
	setupEnv(t)
	t.Setenv("GUESSTIMATE_HISTORY_ENABLED", "false")

	_, _, err := execute(t, "history", "--format", "table")
	require.ErrorContains(t, err, "history is disabled")
}

func TestWriteRoundsFormats(t *testing.T) {
	rounds := []repository.Round{{ID: "r1", Game: "angle", Target: "90°", Guess: "84°", Difference: 6, Grade: "Excellent!"}}

	var buf bytes.Buffer
	require.NoError(t, writeRounds(&buf, rounds, "yaml"))
	var decoded []repository.Round
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "r1", decoded[0].ID)
	require.Equal(t, 6.0, decoded[0].Difference)

	buf.Reset()
	require.NoError(t, writeRounds(&buf, nil, "json"))
	require.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, writeRounds(&buf, nil, "table"))
	require.Equal(t, "no rounds recorded\n", buf.String())

	require.ErrorContains(t, writeRounds(&buf, rounds, "csv"), "unknown format")
}

type fakeCounts map[string]map[string]int

func (f fakeCounts) GradeCounts(_ context.Context, game string) (map[string]int, error) {
	return f[game], nil
}

func TestWriteStats(t *testing.T) {
	counts := fakeCounts{
		config.GameAngle:    {"Perfection!": 2, "OK": 1},
		config.GameFraction: {"Perfect!": 3},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(context.Background(), &buf, counts, config.GameAngle))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "angle\n"))
	require.Contains(t, out, "  Perfection!   2\n")
	require.Contains(t, out, "  Not great...  0\n")
	require.NotContains(t, out, "fraction")

	buf.Reset()
	require.NoError(t, writeStats(context.Background(), &buf, counts, ""))
	require.Contains(t, buf.String(), "  Perfect!      3\n")
}

func TestConfigInit(t *testing.T) {
	dir := setupEnv(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "wrote")
	require.FileExists(t, filepath.Join(dir, "config.toml"))

	_, _, err = execute(t, "config", "init")
	require.ErrorContains(t, err, "exists")
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)

	path := filepath.Join(t.TempDir(), "logs", "guesstimate.log")
	log, err = newLogger(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	log.Debug("hello")
	_ = log.Sync()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)

	_, err = newLogger(config.LogConfig{Path: path, Level: "loud"})
	require.Error(t, err)
}
