package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// TestParseValue validates the fixed coercion order: unit strip, boolean,
// number, quoted string, raw string.
func TestParseValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want cty.Value
	}{
		{"negative dB", "-6 dB", cty.NumberIntVal(-6)},
		{"attached unit", "-6dB", cty.NumberIntVal(-6)},
		{"percent", "80%", cty.NumberIntVal(80)},
		{"cents", "1200 cents", cty.NumberIntVal(1200)},
		{"milliseconds", "250ms", cty.NumberIntVal(250)},
		{"fractional", "0.5", cty.NumberFloatVal(0.5)},
		{"bool true", "true", cty.True},
		{"bool capitalized", "True", cty.True},
		{"bool false", "FALSE", cty.False},
		{"quoted string", `"Grass"`, cty.StringVal("Grass")},
		{"bare string", "Grass", cty.StringVal("Grass")},
		{"padded", "  -6 dB  ", cty.NumberIntVal(-6)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseValue(tc.raw)
			require.True(t, tc.want.RawEquals(got), "ParseValue(%q) = %#v, want %#v", tc.raw, got, tc.want)
		})
	}
}

// TestGoValue validates the lowering into plan-native values: whole numbers
// as int64, fractions as float64.
func TestGoValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(-6), goValue(cty.NumberIntVal(-6)))
	require.Equal(t, 0.5, goValue(cty.NumberFloatVal(0.5)))
	require.Equal(t, true, goValue(cty.True))
	require.Equal(t, "Grass", goValue(cty.StringVal("Grass")))
}
