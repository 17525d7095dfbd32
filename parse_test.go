package nth

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne runs the parser over an input expected to hold exactly one span.
func parseOne(t *testing.T, input string, opts Options) ([]Number, bool) {
	t.Helper()
	spans := scanSpans(input, opts)
	require.Len(t, spans, 1, "input %q", input)
	return parseSpan(spans[0], opts)
}

func assertNumbers(t *testing.T, got []Number, expected ...Number) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.Value.String(), got[i].Value.String(), "value #%d", i)
		assert.Equal(t, e.Kind, got[i].Kind, "kind #%d", i)
	}
}

func num(v int64, k Kind) Number {
	return Number{Value: big.NewInt(v), Kind: k}
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Number
	}{
		{"single word", "three", []Number{num(3, Cardinal)}},
		{"accumulated simples", "twenty three", []Number{num(23, Cardinal)}},
		{"hyphen pair", "twenty-three", []Number{num(23, Cardinal)}},
		{"zero", "zero", []Number{num(0, Cardinal)}},
		{"zeroth", "zeroth", []Number{num(0, Ordinal)}},
		{"hundred", "one hundred", []Number{num(100, Cardinal)}},
		{"hundred remainder", "one hundred twenty-three", []Number{num(123, Cardinal)}},
		{"hundredth", "one hundredth", []Number{num(100, Ordinal)}},
		{"thousand", "one thousand", []Number{num(1000, Cardinal)}},
		{"thousandth", "one thousandth", []Number{num(1000, Ordinal)}},
		{"hecto multiplier on period", "two hundred thousand", []Number{num(200000, Cardinal)}},
		{"mixed periods", "one million two hundred thirty-four thousand five", []Number{num(1234005, Cardinal)}},
		{"ordinal word", "twenty-first", []Number{num(21, Ordinal)}},
		{"ordinal after hundred", "one hundred first", []Number{num(101, Ordinal)}},
		{"digit token", "42", []Number{num(42, Cardinal)}},
		{"digit ordinal", "42nd", []Number{num(42, Ordinal)}},
		{"digit ordinal wrong suffix", "42th", []Number{num(42, OrdinalImproper)}},
		{"digit then bare hundred", "2 hundred", []Number{num(2, Cardinal)}},
		{"word then digits", "three 4", []Number{num(3, Cardinal), num(4, Cardinal)}},
		{"bare period is improper", "thousand", []Number{num(1000, CardinalImproper)}},
		{"bare ordinal period is improper", "thousandth", []Number{num(1000, OrdinalImproper)}},
		{"ordinal bounds split", "third fourth", []Number{num(3, Ordinal), num(4, Ordinal)}},
		{"and ignored", "one hundred and five", []Number{num(105, Cardinal)}},
	}
	opts := DefaultOptions()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseOne(t, tc.input, opts)
			require.True(t, ok)
			assertNumbers(t, got, tc.expected...)
		})
	}
}

func TestParseSpanBareHundred(t *testing.T) {
	opts := DefaultOptions()

	// Strict: a multiplier-less HUNDRED contributes nothing.
	got, ok := parseOne(t, "hundred", opts)
	require.True(t, ok)
	assert.Empty(t, got)

	opts.StrictHundreds = false
	got, ok = parseOne(t, "hundred", opts)
	require.True(t, ok)
	assertNumbers(t, got, num(100, Cardinal))
}

func TestParseSpanLoosePeriods(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictPeriods = false
	got, ok := parseOne(t, "thousand", opts)
	require.True(t, ok)
	assertNumbers(t, got, num(1000, Cardinal))
}

func TestParseSpanOrdinalBoundsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.OrdinalBounds = false

	// Without bounds the two ordinals collapse into one doubled number.
	got, ok := parseOne(t, "third fourth", opts)
	require.True(t, ok)
	assertNumbers(t, got, num(7, OrdinalImproper))
}

func TestParseSpanAndJoinOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.AndPolicy = AndJoinOnly

	got, ok := parseOne(t, "one hundred and five", opts)
	require.True(t, ok)
	assertNumbers(t, got, num(105, Cardinal))

	got, ok = parseOne(t, "one thousand and five", opts)
	require.True(t, ok)
	assertNumbers(t, got, num(1005, Cardinal))

	// AND is only legal after a hundred or period word.
	_, ok = parseOne(t, "one and five", opts)
	assert.False(t, ok)
}

func TestParseSpanImproperCarriesToOrdinal(t *testing.T) {
	// A strict violation on the period keeps the emitted ordinal improper.
	got, ok := parseOne(t, "thousand fifth", DefaultOptions())
	require.True(t, ok)
	assertNumbers(t, got, num(1005, OrdinalImproper))
}
