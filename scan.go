package nth

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// classify inspects the stripped core of one whitespace token.
func classify(core string) (tokenClass, []unit, *big.Int) {
	if core == "" {
		return tokOther, nil, nil
	}
	if allDigits(core) {
		v, _ := new(big.Int).SetString(core, 10)
		return tokDigits, nil, v
	}
	if IsDigitOrdinal(core, false) {
		m := digitOrdinalRe.FindStringSubmatch(core)
		v, _ := new(big.Int).SetString(m[1], 10)
		return tokDigitOrdinal, nil, v
	}
	if strings.EqualFold(core, "AND") {
		return tokAnd, nil, nil
	}
	parts := strings.Split(core, "-")
	if len(parts) > 2 {
		return tokOther, nil, nil
	}
	us := make([]unit, 0, len(parts))
	for _, p := range parts {
		u, ok := lookupUnit(p)
		if !ok {
			return tokOther, nil, nil
		}
		us = append(us, u)
	}
	return tokWord, us, nil
}

// tokenize splits s on whitespace and strips punctuation from each token,
// keeping byte offsets of the classifiable core. Stripped punctuation is
// never part of a span, so it survives conversion untouched.
func tokenize(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		toks = append(toks, makeToken(s, start, i))
	}
	return toks
}

func makeToken(s string, start, end int) token {
	cs, ce := start, end
	for cs < ce {
		r, size := utf8.DecodeRuneInString(s[cs:])
		if isWordRune(r) {
			break
		}
		cs += size
	}
	for ce > cs {
		r, size := utf8.DecodeLastRuneInString(s[cs:ce])
		if isWordRune(r) {
			break
		}
		ce -= size
	}
	core := s[cs:ce]
	class, us, v := classify(core)
	return token{
		class:       class,
		start:       cs,
		end:         ce,
		units:       us,
		value:       v,
		improper:    class == tokDigitOrdinal && !IsDigitOrdinal(core, true),
		punctBefore: cs > start,
		punctAfter:  ce < end,
	}
}

// numeric reports whether t can sit inside a numeric span under opts.
// AND is handled separately since it may only join, never begin or end.
func (t token) numeric(opts Options) bool {
	switch t.class {
	case tokWord:
		return true
	case tokDigits, tokDigitOrdinal:
		return opts.TakeDigits
	}
	return false
}

// scanSpans finds every maximal numeric run in s. Punctuation stuck to a
// token fences the run: a trailing mark ends the run after that token and
// a leading mark keeps the token out of the preceding run.
func scanSpans(s string, opts Options) []Span {
	toks := tokenize(s)
	var spans []Span

	flush := func(run []token) {
		// A run never ends on a joiner word.
		for len(run) > 0 && run[len(run)-1].class == tokAnd {
			run = run[:len(run)-1]
		}
		if len(run) == 0 {
			return
		}
		spans = append(spans, Span{
			Start:  run[0].start,
			End:    run[len(run)-1].end,
			tokens: run,
		})
	}

	var run []token
	for _, t := range toks {
		joiner := t.class == tokAnd && opts.AndPolicy != AndDeny && len(run) > 0
		if !t.numeric(opts) && !joiner {
			flush(run)
			run = nil
			continue
		}
		if t.punctBefore {
			flush(run)
			run = nil
			if t.class == tokAnd {
				continue
			}
		}
		run = append(run, t)
		if t.punctAfter {
			flush(run)
			run = nil
		}
	}
	flush(run)
	return spans
}
