package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchDeliversPaletteOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("light"), 0o600))

	resolve := func() (Mode, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return ParseMode(strings.TrimSpace(string(data)))
	}
	got := make(chan Palette, 8)
	stop, err := Watch(path, resolve, func(p Palette) { got <- p }, nil)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o600))

	select {
	case p := <-got:
		require.True(t, p.Dark)
	case <-time.After(5 * time.Second):
		t.Fatal("no palette delivered")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o600))

	got := make(chan Palette, 8)
	stop, err := Watch(path, func() (Mode, error) { return Dark, nil }, func(p Palette) { got <- p }, nil)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	select {
	case <-got:
		t.Fatal("unexpected palette for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	stop, err := Watch(filepath.Join(dir, "config.toml"), func() (Mode, error) { return Auto, nil }, func(Palette) {}, nil)
	require.NoError(t, err)
	stop()
	stop()
}
