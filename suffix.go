package nth

import (
	"math/big"
	"regexp"
	"strings"
)

var big100 = big.NewInt(100)

// OrdinalSuffix returns the suffix ("ST", "ND", "RD" or "TH") that turns
// the decimal rendering of n into its ordinal form. The teens 11-13 take
// "TH" despite ending in 1-3.
func OrdinalSuffix(n *big.Int) string {
	m := new(big.Int).Mod(n, big100).Int64()
	if m >= 11 && m <= 13 {
		return "TH"
	}
	switch m % 10 {
	case 1:
		return "ST"
	case 2:
		return "ND"
	case 3:
		return "RD"
	}
	return "TH"
}

var digitOrdinalRe = regexp.MustCompile(`(?i)^(\d+)(ST|ND|RD|TH)$`)

// IsDigitOrdinal reports whether tok is a decimal ordinal such as "23RD".
// With strict set, the suffix must also be the correct one for the value,
// so "23TH" is rejected.
func IsDigitOrdinal(tok string, strict bool) bool {
	m := digitOrdinalRe.FindStringSubmatch(tok)
	if m == nil {
		return false
	}
	if !strict {
		return true
	}
	n, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return false
	}
	return strings.EqualFold(m[2], OrdinalSuffix(n))
}

var repairRe = regexp.MustCompile(`(?i)\b(\d+)(ST|ND|RD|TH)\b`)

// RepairSuffix rewrites every decimal ordinal in s with the correct
// suffix for its value, so "101th and 42ND" becomes "101st and 42ND".
// The suffix keeps its original casing convention: all-caps input yields
// an all-caps suffix, anything else yields lowercase.
func RepairSuffix(s string) string {
	return repairRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := repairRe.FindStringSubmatch(m)
		n, ok := new(big.Int).SetString(sub[1], 10)
		if !ok {
			return m
		}
		want := OrdinalSuffix(n)
		if sub[2] != strings.ToUpper(sub[2]) {
			want = strings.ToLower(want)
		}
		return sub[1] + want
	})
}
