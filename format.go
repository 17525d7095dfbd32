package nth

import (
	"math/big"
	"strings"
)

var big1000 = big.NewInt(1000)

// encodeHecto renders a value in 1..999. When ordinal is set the final
// word takes its ordinal form; compounds in 21..99 are hyphenated, so
// 123 ordinal comes out as "ONE HUNDRED TWENTY-THIRD".
func encodeHecto(v int, ordinal bool) string {
	var b strings.Builder
	h, r := v/100, v%100
	if h > 0 {
		b.WriteString(cardinalWord[h])
		if ordinal && r == 0 {
			b.WriteString(" HUNDREDTH")
			return b.String()
		}
		b.WriteString(" HUNDRED")
	}
	if r > 0 {
		if h > 0 {
			b.WriteByte(' ')
		}
		simple := cardinalWord
		if ordinal {
			simple = ordinalWord
		}
		if r < 20 || r%10 == 0 {
			b.WriteString(simple[r])
		} else {
			b.WriteString(cardinalWord[r/10*10])
			b.WriteByte('-')
			b.WriteString(simple[r%10])
		}
	}
	return b.String()
}

// encodeWords renders a non-negative n as English number words, in
// all-caps canonical form. It fails when n is negative or exceeds what
// the period names can express.
func encodeWords(n *big.Int, ordinal bool) (string, bool) {
	if n == nil || n.Sign() < 0 {
		return "", false
	}
	if n.Sign() == 0 {
		if ordinal {
			return "ZEROTH", true
		}
		return "ZERO", true
	}

	// Split into base-1000 groups, least significant first.
	var groups []int
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	for rest.Sign() > 0 {
		rest.DivMod(rest, big1000, mod)
		groups = append(groups, int(mod.Int64()))
	}
	if len(groups) > maxPeriod+1 {
		return "", false
	}

	// The ordinal marker lands on the least significant nonzero group:
	// in its period name when that group is above the units, otherwise
	// in its final number word.
	lowest := 0
	for groups[lowest] == 0 {
		lowest++
	}

	var parts []string
	for e := len(groups) - 1; e >= 0; e-- {
		g := groups[e]
		if g == 0 {
			continue
		}
		word := encodeHecto(g, ordinal && e == lowest && e == 0)
		if e > 0 {
			name := periodWord[e]
			if ordinal && e == lowest {
				name = periodWordTH[e]
			}
			word += " " + name
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " "), true
}

// ToCardinalWords renders n as cardinal words ("ONE HUNDRED TWENTY-THREE").
// It returns "" when n is negative, nil, or too large to name.
func ToCardinalWords(n *big.Int) string {
	s, _ := encodeWords(n, false)
	return s
}

// ToOrdinalWords renders n as ordinal words ("ONE HUNDRED TWENTY-THIRD").
// It returns "" when n is negative, nil, or too large to name.
func ToOrdinalWords(n *big.Int) string {
	s, _ := encodeWords(n, true)
	return s
}

// renderNumber produces the replacement text for one parsed number in the
// requested format. It fails only for word formats on values the tables
// cannot name, in which case the surrounding span is left untouched.
func renderNumber(n *big.Int, f Format) (string, bool) {
	switch f {
	case CardinalDecimal:
		return n.String(), true
	case OrdinalDecimal:
		return n.String() + OrdinalSuffix(n), true
	case CardinalWord, OrdinalWord:
		return encodeWords(n, f == OrdinalWord)
	}
	return "", false
}
