package nth

import "math/big"

// phraseParser is the accumulator for one span. total is nil until the
// first simple or period unit arrives, which is what distinguishes "no
// number yet" from an accumulated zero. stack holds simple values not yet
// folded by a hundred or period unit.
type phraseParser struct {
	total   *big.Int
	stack   []int64
	kind    Kind
	results []Number
}

func (p *phraseParser) sumStack() int64 {
	var s int64
	for _, v := range p.stack {
		s += v
	}
	return s
}

func (p *phraseParser) addTotal(v *big.Int) {
	if p.total == nil {
		p.total = new(big.Int)
	}
	p.total.Add(p.total, v)
}

// step folds one lexical unit into the accumulator.
func (p *phraseParser) step(u unit, opts Options) {
	switch u.class {
	case classPeriod:
		sum := p.sumStack()
		factor := sum
		if factor == 0 {
			factor = 1
			if opts.StrictPeriods {
				p.kind = p.kind.Improper()
			}
		}
		p.stack = p.stack[:0]
		term := new(big.Int).Mul(big.NewInt(factor), periodMagnitude(u.value))
		p.addTotal(term)

	case classHundred:
		factor := p.sumStack()
		if factor == 0 && opts.StrictHundreds {
			break
		}
		if factor == 0 {
			factor = 1
		}
		p.stack = append(p.stack[:0], factor*100)

	case classSimple:
		p.stack = append(p.stack, int64(u.value))
		if p.total == nil {
			p.total = new(big.Int)
		}
	}

	if u.ordinal {
		if opts.OrdinalBounds && p.total != nil {
			k := Ordinal
			if p.kind.IsImproper() {
				k = OrdinalImproper
			}
			p.emit(k)
			p.total = nil
			p.stack = p.stack[:0]
			p.kind = Cardinal
		}
		if p.kind.IsOrdinal() {
			p.kind = OrdinalImproper
		} else {
			p.kind = Ordinal
		}
	}
}

// emit records the accumulated number without resetting state.
func (p *phraseParser) emit(k Kind) {
	v := new(big.Int)
	if p.total != nil {
		v.Set(p.total)
	}
	v.Add(v, big.NewInt(p.sumStack()))
	p.results = append(p.results, Number{Value: v, Kind: k})
}

// flush emits any in-progress number and resets the accumulator.
func (p *phraseParser) flush() {
	if p.total != nil || len(p.stack) > 0 {
		p.emit(p.kind)
	}
	p.total = nil
	p.stack = p.stack[:0]
	p.kind = Cardinal
}

// parseSpan turns one span's tokens into the numbers they denote. A false
// return means the span is not a valid phrase under opts and must be left
// as literal text.
func parseSpan(sp Span, opts Options) ([]Number, bool) {
	var p phraseParser
	prevScale := false
	for _, t := range sp.tokens {
		switch t.class {
		case tokAnd:
			// Joiners contribute no value. Under the join-only policy an
			// AND is legal only right after a hundred or period unit.
			if opts.AndPolicy == AndJoinOnly && !prevScale {
				return nil, false
			}

		case tokDigits:
			// Digit tokens are self-contained: they never merge with a
			// word phrase into one magnitude.
			p.flush()
			p.results = append(p.results, Number{Value: t.value, Kind: Cardinal})
			prevScale = false

		case tokDigitOrdinal:
			p.flush()
			k := Ordinal
			if t.improper {
				k = OrdinalImproper
			}
			p.results = append(p.results, Number{Value: t.value, Kind: k})
			prevScale = false

		case tokWord:
			for _, u := range t.units {
				p.step(u, opts)
			}
			last := t.units[len(t.units)-1]
			prevScale = last.isHundred() || last.isPeriod()

		default:
			return nil, false
		}
	}
	p.flush()

	Logger.Debug().
		Int("start", sp.Start).
		Int("end", sp.End).
		Int("numbers", len(p.results)).
		Msg("parsed span")
	return p.results, true
}
