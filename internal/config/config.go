package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Fraction FractionConfig
	History  HistoryConfig
	Log      LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string
	StartGame string `mapstructure:"start_game"`
	Radians   bool
	Decimal   bool
}

// FractionConfig holds the whole-number display edges of the fraction game.
type FractionConfig struct {
	OneAbove  float64 `mapstructure:"one_above"`
	ZeroBelow float64 `mapstructure:"zero_below"`
}

// HistoryConfig holds the sqlite round log settings.
type HistoryConfig struct {
	Enabled bool
	Path    string
}

// LogConfig holds file logging settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Game names accepted by ui.start_game and --game.
const (
	GameAngle    = "angle"
	GameFraction = "fraction"
)

// Games lists the playable games.
var Games = []string{GameAngle, GameFraction}

// ErrUnknownGame is wrapped by ResolveGame.
var ErrUnknownGame = errors.New("unknown game")

// Path returns the config file location. GUESSTIMATE_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("GUESSTIMATE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "guesstimate", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix GUESSTIMATE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.start_game", GameAngle)
	v.SetDefault("ui.radians", false)
	v.SetDefault("ui.decimal", false)
	v.SetDefault("fraction.one_above", 0.98)
	v.SetDefault("fraction.zero_below", 0.02)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "guesstimate", "guesstimate.db"))
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("GUESSTIMATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values viper cannot type-check.
func (c Config) Validate() error {
	if _, err := ResolveGame(c.UI.StartGame); err != nil {
		return fmt.Errorf("ui.start_game: %w", err)
	}
	f := c.Fraction
	if f.ZeroBelow < 0 || f.OneAbove > 1 || f.ZeroBelow >= f.OneAbove {
		return fmt.Errorf("fraction: need 0 <= zero_below < one_above <= 1, got %v and %v", f.ZeroBelow, f.OneAbove)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.start_game", cfg.UI.StartGame)
	v.Set("ui.radians", cfg.UI.Radians)
	v.Set("ui.decimal", cfg.UI.Decimal)
	v.Set("fraction.one_above", cfg.Fraction.OneAbove)
	v.Set("fraction.zero_below", cfg.Fraction.ZeroBelow)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolveGame matches name against the known games. On a miss the error
// suggests the closest name.
func ResolveGame(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, g := range Games {
		if n == g {
			return g, nil
		}
	}
	best, bestDist := "", -1
	for _, g := range Games {
		d := levenshtein.ComputeDistance(n, g)
		if bestDist < 0 || d < bestDist {
			best, bestDist = g, d
		}
	}
	if bestDist <= 3 {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownGame, name, best)
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownGame, name, strings.Join(Games, ", "))
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
