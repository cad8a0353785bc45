package fraction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	tests := []struct {
		name string
		x    float64
		unit Unit
		want string
	}{
		{"half", 0.5, Fractional, "1/2"},
		{"third", 1.0 / 3, Fractional, "1/3"},
		{"near one", 0.99, Fractional, "1"},
		{"at one edge", 0.98, Fractional, "49/50"},
		{"near zero", 0.01, Fractional, "0"},
		{"decimal half", 0.5, Decimal, "0.50"},
		{"decimal ignores edges", 0.99, Decimal, "0.99"},
		{"decimal zero", 0, Decimal, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.x, tt.unit, th))
		})
	}
}

func TestFormatCustomThresholds(t *testing.T) {
	t.Parallel()

	th := Thresholds{OneAbove: 0.9, ZeroBelow: 0.1}
	require.Equal(t, "1", Format(0.95, Fractional, th))
	require.Equal(t, "0", Format(0.05, Fractional, th))
}

func TestFormatTarget(t *testing.T) {
	t.Parallel()

	require.Equal(t, "3 / 7", FormatTarget(Ratio{Num: 3, Den: 7}, Fractional))
	require.Equal(t, "0.43", FormatTarget(Ratio{Num: 3, Den: 7}, Decimal))
}
