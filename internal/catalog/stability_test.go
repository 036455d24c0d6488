package catalog_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/discs/internal/catalog"
)

func TestParseStability_Numeric(t *testing.T) {
	cases := []struct {
		turn, fade string
		want       string
	}{
		{"1", "1", catalog.StabilityOverstable},
		{"0", "0", catalog.StabilityStable},
		{"-1", "-1", catalog.StabilityUnderstable},
		{"3", "2", catalog.StabilityVeryOverstable},
		{"0", "4", catalog.StabilityVeryOverstable},
		{"1", "2.9", catalog.StabilityOverstable},
		{"-1", "2.9", catalog.StabilityStable},
		{"-2", "0.5", catalog.StabilityStable},
		{"-3", "0", catalog.StabilityUnderstable},
		{"-4", "0", catalog.StabilityVeryUnderstable},
		{"-5", "1", catalog.StabilityVeryUnderstable},
		{"-3.5", "-1", catalog.StabilityVeryUnderstable},
		{"-.5", ".5", catalog.StabilityStable},
		{" 2", "0", catalog.StabilityOverstable},
		{"1.5 deg", "1", catalog.StabilityOverstable},
	}
	for _, tc := range cases {
		t.Run(tc.turn+"+"+tc.fade, func(t *testing.T) {
			got, ok := catalog.ParseStability(nil, tc.turn, tc.fade)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseStability_NonNumeric(t *testing.T) {
	for _, tc := range [][2]string{{"abc", "1"}, {"1", ""}, {"", ""}, {"-", "1"}, {".", "0"}} {
		got, ok := catalog.ParseStability(nil, tc[0], tc[1])
		assert.False(t, ok, "turn=%q fade=%q", tc[0], tc[1])
		assert.Empty(t, got)
	}
}

func TestParseStability_ClassHintWins(t *testing.T) {
	got, ok := catalog.ParseStability([]string{"disc-item", "understable"}, "3", "3")
	require.True(t, ok)
	assert.Equal(t, catalog.StabilityUnderstable, got)
}

func TestParseStability_LastMatchingClassWins(t *testing.T) {
	got, ok := catalog.ParseStability([]string{"stable", "row", "very-overstable", "col"}, "0", "0")
	require.True(t, ok)
	assert.Equal(t, catalog.StabilityVeryOverstable, got)
}

func TestParseStability_UnknownClassesFallBack(t *testing.T) {
	got, ok := catalog.ParseStability([]string{"row", "Overstable", ""}, "-3", "0")
	require.True(t, ok)
	assert.Equal(t, catalog.StabilityUnderstable, got)
}

func TestParseStability_ClassHintWithUnparseableRatings(t *testing.T) {
	got, ok := catalog.ParseStability([]string{"overstable"}, "n/a", "n/a")
	require.True(t, ok)
	assert.Equal(t, catalog.StabilityOverstable, got)
}

func TestStabilityLabel(t *testing.T) {
	label, ok := catalog.StabilityLabel("very-understable")
	assert.True(t, ok)
	assert.Equal(t, catalog.StabilityVeryUnderstable, label)

	_, ok = catalog.StabilityLabel("Stable")
	assert.False(t, ok)
}

func expectedStability(diff float64) string {
	switch {
	case diff >= 4:
		return catalog.StabilityVeryOverstable
	case diff >= 2:
		return catalog.StabilityOverstable
	case diff > -2:
		return catalog.StabilityStable
	case diff > -4:
		return catalog.StabilityUnderstable
	default:
		return catalog.StabilityVeryUnderstable
	}
}

// Property: any pair of finite numeric ratings classifies according to the
// turn+fade range table.
func TestPropertyParseStability_Ranges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		turn := rapid.IntRange(-50, 50).Draw(t, "turn10")
		fade := rapid.IntRange(-50, 50).Draw(t, "fade10")
		ts := strconv.FormatFloat(float64(turn)/10, 'f', 1, 64)
		fs := strconv.FormatFloat(float64(fade)/10, 'f', 1, 64)

		tv, _ := strconv.ParseFloat(ts, 64)
		fv, _ := strconv.ParseFloat(fs, 64)

		got, ok := catalog.ParseStability(nil, ts, fs)
		if !ok {
			t.Fatalf("ParseStability(%q, %q) failed", ts, fs)
		}
		if want := expectedStability(tv + fv); got != want {
			t.Fatalf("ParseStability(%q, %q) = %q, want %q", ts, fs, got, want)
		}
	})
}
