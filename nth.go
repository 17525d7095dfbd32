// Package nth converts numbers embedded in English text between their
// decimal and word spellings, in both cardinal and ordinal form. It finds
// maximal numeric phrases ("ONE HUNDRED and TWENTY-THIRD", "42nd"),
// parses them to arbitrary-precision magnitudes and rewrites them in the
// requested format, leaving all surrounding text untouched.
package nth

import "strings"

// accepted reports whether numbers of kind k survive the accept gates.
func accepted(k Kind, opts Options) bool {
	switch k {
	case Cardinal:
		return opts.AcceptCardinal
	case Ordinal:
		return opts.AcceptOrdinal
	case CardinalImproper:
		return opts.AcceptCardinalImproper
	case OrdinalImproper:
		return opts.AcceptOrdinalImproper
	}
	return false
}

// renderSpan produces the replacement text for one span, or ok=false when
// the span must stay literal: the phrase does not parse, a number's kind
// is gated off, or a value is too large to spell out.
func renderSpan(sp Span, opts Options) (string, bool) {
	numbers, ok := parseSpan(sp, opts)
	if !ok || len(numbers) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if !accepted(n.Kind, opts) {
			return "", false
		}
		s, ok := renderNumber(n.Value, opts.Format)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), true
}

// Convert rewrites every numeric phrase in s into opts.Format. Text
// outside detected phrases, including punctuation and case, is copied
// through byte for byte. Phrases that fail to parse, or whose numbers are
// rejected by the accept gates, are left as they were.
func Convert(s string, opts Options) string {
	spans := scanSpans(s, opts)
	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, sp := range spans {
		b.WriteString(s[prev:sp.Start])
		if out, ok := renderSpan(sp, opts); ok {
			b.WriteString(out)
		} else {
			b.WriteString(s[sp.Start:sp.End])
		}
		prev = sp.End
	}
	b.WriteString(s[prev:])

	out := b.String()
	if opts.RepairSuffixes {
		out = RepairSuffix(out)
	}
	return out
}

// Cardinalize rewrites numbers in s as cardinals, spelled out when asWord
// is set and decimal otherwise.
func Cardinalize(s string, asWord bool) string {
	opts := DefaultOptions()
	opts.Format = CardinalDecimal
	if asWord {
		opts.Format = CardinalWord
	}
	return Convert(s, opts)
}

// Ordinalize rewrites numbers in s as ordinals, spelled out when asWord
// is set and decimal otherwise.
func Ordinalize(s string, asWord bool) string {
	opts := DefaultOptions()
	opts.Format = OrdinalDecimal
	if asWord {
		opts.Format = OrdinalWord
	}
	return Convert(s, opts)
}

// DetectNumbers reports whether s contains anything worth converting: a
// number word or a decimal ordinal. Plain digit tokens do not count, as
// they are already in normalized form.
func DetectNumbers(s string) bool {
	for _, t := range tokenize(s) {
		if t.class == tokWord || t.class == tokDigitOrdinal {
			return true
		}
	}
	return false
}

// DetectOrdinal reports whether s contains a decimal ordinal token such
// as "3rd". With strict set, tokens whose suffix is wrong for their value
// ("23th") do not count.
func DetectOrdinal(s string, strict bool) bool {
	for _, t := range tokenize(s) {
		if t.class == tokDigitOrdinal && (!strict || !t.improper) {
			return true
		}
	}
	return false
}

// ScanNumbers reports every numeric span in s with the values parsed from
// it. Spans that do not parse have a nil Numbers slice.
func ScanNumbers(s string, opts Options) []SpanInfo {
	spans := scanSpans(s, opts)
	infos := make([]SpanInfo, 0, len(spans))
	for _, sp := range spans {
		info := SpanInfo{Start: sp.Start, End: sp.End, Text: s[sp.Start:sp.End]}
		if numbers, ok := parseSpan(sp, opts); ok {
			info.Numbers = numbers
		}
		infos = append(infos, info)
	}
	return infos
}
