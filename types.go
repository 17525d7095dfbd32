package nth

import "math/big"

// Kind classifies a parsed number.
type Kind int

const (
	Cardinal Kind = iota // counting form: "123", "ONE HUNDRED TWENTY-THREE"
	Ordinal              // ordering form: "123RD", "ONE HUNDRED TWENTY-THIRD"
	CardinalImproper     // cardinal whose period/hundred grouping lacked an explicit multiplier
	OrdinalImproper      // ordinal with the same defect, or a doubled ordinal unit
)

// IsOrdinal reports whether k is one of the ordinal kinds.
func (k Kind) IsOrdinal() bool {
	return k == Ordinal || k == OrdinalImproper
}

// IsImproper reports whether k is one of the improper kinds.
func (k Kind) IsImproper() bool {
	return k == CardinalImproper || k == OrdinalImproper
}

// Improper returns the improper variant of k.
func (k Kind) Improper() Kind {
	if k.IsOrdinal() {
		return OrdinalImproper
	}
	return CardinalImproper
}

// String provides human-readable kind descriptions.
func (k Kind) String() string {
	return map[Kind]string{
		Cardinal:         "cardinal",
		Ordinal:          "ordinal",
		CardinalImproper: "cardinal-improper",
		OrdinalImproper:  "ordinal-improper",
	}[k]
}

// MarshalText implements encoding.TextMarshaler so that Kind serializes
// readably in JSON span reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Format selects the output representation for converted numbers.
type Format int

const (
	CardinalDecimal Format = iota // "123"
	CardinalWord                  // "ONE HUNDRED TWENTY-THREE"
	OrdinalDecimal                // "123RD"
	OrdinalWord                   // "ONE HUNDRED TWENTY-THIRD"
)

// Word reports whether f renders numbers as words rather than digits.
func (f Format) Word() bool {
	return f == CardinalWord || f == OrdinalWord
}

// Ordinal reports whether f renders numbers in ordinal form.
func (f Format) Ordinal() bool {
	return f == OrdinalDecimal || f == OrdinalWord
}

// String provides human-readable format descriptions.
func (f Format) String() string {
	return map[Format]string{
		CardinalDecimal: "cardinal-decimal",
		CardinalWord:    "cardinal-word",
		OrdinalDecimal:  "ordinal-decimal",
		OrdinalWord:     "ordinal-word",
	}[f]
}

// Number is one value recovered from a numeric span.
type Number struct {
	Value *big.Int `json:"value"`
	Kind  Kind     `json:"kind"`
}

// unitClass distinguishes the three shapes a lexical number atom can take.
// A unit is never more than one of these at a time; the lookup tables are
// partitioned so that illegal combinations are unrepresentable.
type unitClass int

const (
	classSimple  unitClass = iota // plain value 0-99
	classHundred                  // the multiplier trigger, fixed value 100
	classPeriod                   // value is an exponent e, magnitude 1000^e
)

// unit is an atomic lexical number token resolved via the lookup tables.
type unit struct {
	class   unitClass
	value   int // simple value, 100, or period exponent
	ordinal bool
}

func (u unit) isPeriod() bool  { return u.class == classPeriod }
func (u unit) isHundred() bool { return u.class == classHundred }

// tokenClass is the span detector's classification of one whitespace token.
type tokenClass int

const (
	tokOther        tokenClass = iota // non-numeric text
	tokWord                           // every sub-word resolves via the lookup tables
	tokDigits                         // decimal cardinal: "123"
	tokDigitOrdinal                   // decimal ordinal: "123RD"
	tokAnd                            // the joiner word "AND"
)

// token is one whitespace-delimited token with its classifiable core.
// start/end delimit the core only: stripped punctuation stays literal text.
type token struct {
	class      tokenClass
	start, end int      // byte offsets of the core within the input
	units       []unit   // tokWord: one unit, or two for a hyphen pair
	value       *big.Int // tokDigits, tokDigitOrdinal
	improper    bool     // tokDigitOrdinal whose suffix is wrong for its value
	punctBefore bool     // leading punctuation was stripped
	punctAfter  bool     // trailing punctuation was stripped
}

// Span is a half-open byte range covering one maximal numeric run.
// Spans are produced in source order and never overlap.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`

	tokens []token
}

// SpanInfo describes one detected numeric span together with the values
// parsed from it. Used by ScanNumbers and the CLI's JSON report.
type SpanInfo struct {
	Start   int      `json:"start"`
	End     int      `json:"end"`
	Text    string   `json:"text"`
	Numbers []Number `json:"numbers,omitempty"`
}
