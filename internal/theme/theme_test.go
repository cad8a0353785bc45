package theme

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, p := range []Palette{DarkPalette(), LightPalette()} {
		for _, c := range p.All() {
			require.Regexp(t, hexColorRegex, string(c), "palette %s", p.Name)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", Auto, false},
		{"AUTO", Auto, false},
		{" light ", Light, false},
		{"dark", Dark, false},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestDetect(t *testing.T) {
	orig := hasDarkBackground
	t.Cleanup(func() { hasDarkBackground = orig })

	require.True(t, Detect(Dark).Dark)
	require.False(t, Detect(Light).Dark)

	hasDarkBackground = func() bool { return true }
	require.Equal(t, "dark", Detect(Auto).Name)
	hasDarkBackground = func() bool { return false }
	require.Equal(t, "light", Detect(Auto).Name)
}
