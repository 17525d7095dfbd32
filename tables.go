package nth

import (
	"math/big"
	"strings"
)

// The lookup tables are partitioned by unit shape so that resolving a word
// also classifies it. Common misspellings map to the same unit as the
// canonical word; the reverse (canonical) spelling is chosen at init time
// as the first entry of each value's list.

type entry struct {
	words []string // canonical spelling first, then accepted aliases
	unit  unit
}

var zeroEntries = []entry{
	{[]string{"ZERO"}, unit{classSimple, 0, false}},
	{[]string{"ZEROTH"}, unit{classSimple, 0, true}},
}

var cardinalSimple = []entry{
	{[]string{"ONE"}, unit{classSimple, 1, false}},
	{[]string{"TWO"}, unit{classSimple, 2, false}},
	{[]string{"THREE"}, unit{classSimple, 3, false}},
	{[]string{"FOUR"}, unit{classSimple, 4, false}},
	{[]string{"FIVE"}, unit{classSimple, 5, false}},
	{[]string{"SIX"}, unit{classSimple, 6, false}},
	{[]string{"SEVEN"}, unit{classSimple, 7, false}},
	{[]string{"EIGHT"}, unit{classSimple, 8, false}},
	{[]string{"NINE"}, unit{classSimple, 9, false}},
	{[]string{"TEN"}, unit{classSimple, 10, false}},
	{[]string{"ELEVEN"}, unit{classSimple, 11, false}},
	{[]string{"TWELVE"}, unit{classSimple, 12, false}},
	{[]string{"THIRTEEN"}, unit{classSimple, 13, false}},
	{[]string{"FOURTEEN"}, unit{classSimple, 14, false}},
	{[]string{"FIFTEEN"}, unit{classSimple, 15, false}},
	{[]string{"SIXTEEN"}, unit{classSimple, 16, false}},
	{[]string{"SEVENTEEN"}, unit{classSimple, 17, false}},
	{[]string{"EIGHTEEN"}, unit{classSimple, 18, false}},
	{[]string{"NINETEEN"}, unit{classSimple, 19, false}},
	{[]string{"TWENTY"}, unit{classSimple, 20, false}},
	{[]string{"THIRTY"}, unit{classSimple, 30, false}},
	{[]string{"FORTY", "FOURTY"}, unit{classSimple, 40, false}},
	{[]string{"FIFTY"}, unit{classSimple, 50, false}},
	{[]string{"SIXTY"}, unit{classSimple, 60, false}},
	{[]string{"SEVENTY"}, unit{classSimple, 70, false}},
	{[]string{"EIGHTY"}, unit{classSimple, 80, false}},
	{[]string{"NINETY"}, unit{classSimple, 90, false}},
}

var ordinalSimple = []entry{
	{[]string{"FIRST"}, unit{classSimple, 1, true}},
	{[]string{"SECOND"}, unit{classSimple, 2, true}},
	{[]string{"THIRD"}, unit{classSimple, 3, true}},
	{[]string{"FOURTH"}, unit{classSimple, 4, true}},
	{[]string{"FIFTH"}, unit{classSimple, 5, true}},
	{[]string{"SIXTH"}, unit{classSimple, 6, true}},
	{[]string{"SEVENTH"}, unit{classSimple, 7, true}},
	{[]string{"EIGHTH"}, unit{classSimple, 8, true}},
	{[]string{"NINTH"}, unit{classSimple, 9, true}},
	{[]string{"TENTH"}, unit{classSimple, 10, true}},
	{[]string{"ELEVENTH"}, unit{classSimple, 11, true}},
	{[]string{"TWELFTH", "TWELVTH"}, unit{classSimple, 12, true}},
	{[]string{"THIRTEENTH"}, unit{classSimple, 13, true}},
	{[]string{"FOURTEENTH", "FORTEENTH", "FOURTHEENTH", "FORTHEENTH"}, unit{classSimple, 14, true}},
	{[]string{"FIFTEENTH"}, unit{classSimple, 15, true}},
	{[]string{"SIXTEENTH"}, unit{classSimple, 16, true}},
	{[]string{"SEVENTEENTH"}, unit{classSimple, 17, true}},
	{[]string{"EIGHTEENTH"}, unit{classSimple, 18, true}},
	{[]string{"NINETEENTH"}, unit{classSimple, 19, true}},
	{[]string{"TWENTIETH"}, unit{classSimple, 20, true}},
	{[]string{"THIRTIETH"}, unit{classSimple, 30, true}},
	{[]string{"FORTIETH", "FOURTIETH"}, unit{classSimple, 40, true}},
	{[]string{"FIFTIETH"}, unit{classSimple, 50, true}},
	{[]string{"SIXTIETH"}, unit{classSimple, 60, true}},
	{[]string{"SEVENTIETH"}, unit{classSimple, 70, true}},
	{[]string{"EIGHTIETH"}, unit{classSimple, 80, true}},
	{[]string{"NINETIETH"}, unit{classSimple, 90, true}},
}

var hundredEntries = []entry{
	{[]string{"HUNDRED"}, unit{classHundred, 100, false}},
	{[]string{"HUNDREDTH"}, unit{classHundred, 100, true}},
}

var periodCardinal = []entry{
	{[]string{"THOUSAND"}, unit{classPeriod, 1, false}},
	{[]string{"MILLION"}, unit{classPeriod, 2, false}},
	{[]string{"BILLION"}, unit{classPeriod, 3, false}},
	{[]string{"TRILLION"}, unit{classPeriod, 4, false}},
	{[]string{"QUADRILLION"}, unit{classPeriod, 5, false}},
	{[]string{"QUINTILLION"}, unit{classPeriod, 6, false}},
}

var periodOrdinal = []entry{
	{[]string{"THOUSANDTH"}, unit{classPeriod, 1, true}},
	{[]string{"MILLIONTH"}, unit{classPeriod, 2, true}},
	{[]string{"BILLIONTH"}, unit{classPeriod, 3, true}},
	{[]string{"TRILLIONTH"}, unit{classPeriod, 4, true}},
	{[]string{"QUADRILLIONTH"}, unit{classPeriod, 5, true}},
	{[]string{"QUINTILLIONTH"}, unit{classPeriod, 6, true}},
}

// maxPeriod is the highest period exponent the tables can name.
const maxPeriod = 6

// units maps every accepted spelling (canonical and alias) to its unit.
var units = map[string]unit{}

// cardinalWord and ordinalWord map a simple value to its canonical spelling.
var (
	cardinalWord = map[int]string{}
	ordinalWord  = map[int]string{}
	periodWord   = map[int]string{} // exponent to canonical cardinal name
	periodWordTH = map[int]string{} // exponent to canonical ordinal name
)

func init() {
	groups := [][]entry{zeroEntries, cardinalSimple, ordinalSimple, hundredEntries, periodCardinal, periodOrdinal}
	for _, group := range groups {
		for _, e := range group {
			for _, w := range e.words {
				if _, dup := units[w]; dup {
					panic("nth: duplicate table word " + w)
				}
				units[w] = e.unit
			}
			switch {
			case e.unit.class == classSimple && !e.unit.ordinal:
				cardinalWord[e.unit.value] = e.words[0]
			case e.unit.class == classSimple && e.unit.ordinal:
				ordinalWord[e.unit.value] = e.words[0]
			case e.unit.class == classPeriod && !e.unit.ordinal:
				periodWord[e.unit.value] = e.words[0]
			case e.unit.class == classPeriod && e.unit.ordinal:
				periodWordTH[e.unit.value] = e.words[0]
			}
		}
	}
}

// lookupUnit resolves a single word, case-insensitively.
func lookupUnit(word string) (unit, bool) {
	u, ok := units[strings.ToUpper(word)]
	return u, ok
}

// periodMagnitude returns 1000^e.
func periodMagnitude(e int) *big.Int {
	return new(big.Int).Exp(big.NewInt(1000), big.NewInt(int64(e)), nil)
}
