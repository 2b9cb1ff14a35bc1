package weight_test

import (
	"testing"

	"github.com/katalvlaran/roadnet/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Modes(t *testing.T) {
	tests := []struct {
		name                    string
		mode                    weight.Mode
		cost, benefit, distance float64
		want                    float64
	}{
		{"distance", weight.ModeDistance, 100, 50, 7.5, 7.5},
		{"cost", weight.ModeCost, 100, 50, 7.5, 100},
		{"ratio", weight.ModeRatio, 100, 50, 7.5, 2},
		{"ratio zero benefit", weight.ModeRatio, 10, 0, 3, 10 / weight.ZeroBenefitEpsilon},
		{"cost ignores zero benefit", weight.ModeCost, 10, 0, 3, 10},
		{"distance defaults to zero", weight.ModeDistance, 10, 5, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := weight.Compute(tc.mode, tc.cost, tc.benefit, tc.distance)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestRatio_ZeroBenefit pins the epsilon constant: 10 / 0.001 == 10000.
func TestRatio_ZeroBenefit(t *testing.T) {
	assert.Equal(t, 0.001, weight.ZeroBenefitEpsilon)
	got, err := weight.Compute(weight.ModeRatio, 10, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, got, 1e-6)

	assert.Equal(t, weight.ZeroBenefitEpsilon, weight.EffectiveBenefit(0))
	assert.Equal(t, 4.0, weight.EffectiveBenefit(4))
}

func TestUnknownMode(t *testing.T) {
	_, err := weight.Lookup("fastest")
	assert.ErrorIs(t, err, weight.ErrUnknownMode)

	_, err = weight.Compute("", 1, 1, 1)
	assert.ErrorIs(t, err, weight.ErrUnknownMode, "empty Mode is not a valid policy at Lookup level")

	_, err = weight.ParseMode("ratios")
	assert.ErrorIs(t, err, weight.ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	cases := map[string]weight.Mode{
		"":            weight.DefaultMode,
		"   ":         weight.DefaultMode,
		"ratio":       weight.ModeRatio,
		"COST":        weight.ModeCost,
		" Distance\n": weight.ModeDistance,
	}
	for in, want := range cases {
		got, err := weight.ParseMode(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestModes_AllResolvable(t *testing.T) {
	modes := weight.Modes()
	assert.Equal(t, []weight.Mode{weight.ModeRatio, weight.ModeCost, weight.ModeDistance}, modes)
	for _, m := range modes {
		fn, err := weight.Lookup(m)
		require.NoError(t, err)
		assert.NotNil(t, fn)
	}
}
