package bidi

import "unicode"

// Direction is the simplified bidi class of a code unit.
type Direction int8

// Directions. The zero value is not a valid direction.
const (
	RTL     Direction = iota + 1 // strong right-to-left
	Weak                         // numbers, number separators, marks
	Neutral                      // whitespace, separators, other neutrals
	LTR                          // strong left-to-right, default
)

func (d Direction) String() string {
	switch d {
	case RTL:
		return "RTL"
	case Weak:
		return "Weak"
	case Neutral:
		return "Neutral"
	case LTR:
		return "LTR"
	}
	return "<none>"
}

// DirectionOf returns the direction of a code unit. Code units not listed as
// RTL, neutral or weak are LTR.
func DirectionOf(u uint16) Direction {
	r := rune(u)
	switch {
	case unicode.Is(rtlTable, r):
		return RTL
	case unicode.Is(neutralTable, r):
		return Neutral
	case unicode.Is(weakTable, r):
		return Weak
	}
	return LTR
}

// IsRTL is true for strong right-to-left code units.
func IsRTL(u uint16) bool {
	return unicode.Is(rtlTable, rune(u))
}

// IsStrong is true for RTL and LTR.
func (d Direction) IsStrong() bool {
	return d == RTL || d == LTR
}

// DominantDirection returns the direction of the first strong code unit of
// line, or LTR if there is none.
func DominantDirection(line []uint16) Direction {
	for _, u := range line {
		if d := DirectionOf(u); d.IsStrong() {
			return d
		}
	}
	return LTR
}

// Mirror returns the mirrored partner of a code unit, e.g. ')' for '('.
func Mirror(u uint16) (uint16, bool) {
	m, ok := mirrorPairs[u]
	if !ok {
		return u, false
	}
	return m, true
}
