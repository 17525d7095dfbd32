package nth

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "TH"},
		{1, "ST"},
		{2, "ND"},
		{3, "RD"},
		{4, "TH"},
		{10, "TH"},
		{11, "TH"},
		{12, "TH"},
		{13, "TH"},
		{21, "ST"},
		{22, "ND"},
		{23, "RD"},
		{100, "TH"},
		{101, "ST"},
		{111, "TH"},
		{112, "TH"},
		{113, "TH"},
		{1000003, "RD"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, OrdinalSuffix(big.NewInt(tc.n)), "n=%d", tc.n)
	}
}

// The teens always take TH no matter what the last digit is.
func TestOrdinalSuffixTeens(t *testing.T) {
	for hundreds := int64(0); hundreds < 5; hundreds++ {
		for m := int64(11); m <= 19; m++ {
			n := big.NewInt(hundreds*100 + m)
			assert.Equal(t, "TH", OrdinalSuffix(n), "n=%s", n)
		}
	}
}

func TestIsDigitOrdinal(t *testing.T) {
	tests := []struct {
		tok    string
		loose  bool
		strict bool
	}{
		{"1ST", true, true},
		{"1st", true, true},
		{"2nd", true, true},
		{"3RD", true, true},
		{"4th", true, true},
		{"11th", true, true},
		{"23RD", true, true},
		{"23TH", true, false},
		{"101th", true, false},
		{"111st", true, false},
		{"1", false, false},
		{"ST", false, false},
		{"1STT", false, false},
		{"x1st", false, false},
		{"FIRST", false, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.loose, IsDigitOrdinal(tc.tok, false), "loose %q", tc.tok)
		assert.Equal(t, tc.strict, IsDigitOrdinal(tc.tok, true), "strict %q", tc.tok)
	}
}

func TestRepairSuffix(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"already correct", "42nd", "42nd"},
		{"wrong lowercase", "101th", "101st"},
		{"wrong uppercase keeps caps", "23TH", "23RD"},
		{"mixed case goes lowercase", "23Th", "23rd"},
		{"teens stay th", "111st", "111th"},
		{"embedded in text", "the 2st and the 3st", "the 2nd and the 3rd"},
		{"plain digits untouched", "42 items", "42 items"},
		{"word attached untouched", "x23th", "x23th"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RepairSuffix(tc.in))
		})
	}
}
