package shaping

// Category is a shaping category of a code unit. Categories are shared between
// scripts, but every script uses only a subset of them.
type Category int8

// Categories of code units. Short names follow the usual names of shaping
// categories for Indic and South-East Asian scripts.
const (
	Other              Category = iota // O, anything not relevant for a script
	Consonant                          // C
	GenericBase                        // GB, placeholders like dotted circle
	Halant                             // H
	IndependentVowel                   // IV, V
	Joiner                             // J, ZWJ and CGJ
	Modifier                           // M
	MedialRa                           // MR
	MedialYa                           // MY
	Number                             // N
	Punctuation                        // P
	Reserved                           // R
	Symbol                             // S
	VowelAbove                         // VAbv
	VowelBelow                         // VBlw
	VowelPre                           // VPre
	VowelPost                          // VPst
	VowelCompound                      // Vc, Tibetan vowels composed of two marks
	VariationSelector                  // VS
	WordJoiner                         // WJ
	NonJoiner                          // NJ
	Whitespace                         // WS
	Anusvara                           // A
	Kinzi                              // K, three code units
	HeadLetter                         // Lh, Tibetan head letter
	ConsonantS1                        // Cs1
	ConsonantS2                        // Cs2
	IndependentVowelS1                 // Vs1
	Coeng                              // Coeng
	RegisterShifter                    // RS
	Robat                              // Robat
	SignAbove                          // SAbv
	SignPost                           // SPst
	SignAboveNum                       // SAbvN
	Currency                           // Currency
)

var categoryNames = [...]string{
	"O", "C", "GB", "H", "IV", "J", "M", "MR", "MY", "N", "P", "R", "S",
	"VAbv", "VBlw", "VPre", "VPst", "Vc", "VS", "WJ", "NJ", "WS", "A", "K",
	"Lh", "Cs1", "Cs2", "Vs1", "Coeng", "RS", "Robat", "SAbv", "SPst", "SAbvN",
	"Currency",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "?"
	}
	return categoryNames[c]
}

// span is an inclusive range of code units.
type span struct {
	lo, hi uint16
}

// classRule assigns a category to a set of code unit ranges.
type classRule struct {
	cat   Category
	spans []span
}

// classify returns the category of the first rule containing u, or fallback.
// Rules are checked in order, earlier rules win.
func classify(rules []classRule, u uint16, fallback Category) Category {
	for _, r := range rules {
		for _, s := range r.spans {
			if u >= s.lo && u <= s.hi {
				return r.cat
			}
		}
	}
	return fallback
}

func one(u uint16) span {
	return span{u, u}
}
