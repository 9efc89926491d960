package shaping

import "github.com/emirpasic/gods/lists/arraylist"

var myanmarClasses = []classRule{
	{Anusvara, []span{one(0x1032), one(0x1036)}},
	{Consonant, []span{
		{0x1000, 0x1020}, one(0x103F), one(0x104E), {0x1050, 0x1051},
		{0x105A, 0x105D}, one(0x1061), {0x1065, 0x1066}, {0x106E, 0x1070},
		{0x1075, 0x1081}, one(0x108E), {0xAA60, 0xAA6F}, {0xAA71, 0xAA76},
		one(0xAA7A),
	}},
	{MedialRa, []span{one(0x103C)}},
	{VowelBelow, []span{{0x102F, 0x1030}, {0x1058, 0x1059}}},
	{VowelPre, []span{one(0x1031), one(0x1084)}},
	{Whitespace, whitespace},
}

// isKinzi checks for a kinzi sequence (Nga, Ra or Mon Nga followed by Asat
// and Virama) starting at input[at].
func isKinzi(input []uint16, at int) bool {
	if at+2 >= len(input) {
		return false
	}
	switch input[at] {
	case 0x1004, 0x101B, 0x105A:
		return input[at+1] == 0x103A && input[at+2] == 0x1039
	}
	return false
}

// Myanmar reorders Burmese and related languages written in Myanmar script.
// Every code unit forms a definition of its own, except kinzi, which spans
// three code units.
var Myanmar = &Script{
	Name: "Myanmar",
	Classify: func(input []uint16, at int) Category {
		if isKinzi(input, at) {
			return Kinzi
		}
		return classify(myanmarClasses, input[at], Other)
	},
	Span: func(input []uint16, at int, c Category) int {
		if c == Kinzi {
			return 3
		}
		return 1
	},
	IsBreak: breakOn(Whitespace),
	Reorder: reorderMyanmar,
}

func reorderMyanmar(defs *arraylist.List) {
	size, ins := defs.Size(), 0
	for i := 0; i < size; i++ {
		switch categoryAt(defs, i) {
		case Kinzi: // kinzi goes after the consonant it sits on
			if i+1 < size {
				defs.Swap(i, i+1)
				i++
			}
		case MedialRa: // before the first consonant
			b := 0
			for b+1 < size && categoryAt(defs, b) != Consonant {
				b++
			}
			moveTo(defs, i, b)
		case VowelPre:
			moveTo(defs, i, ins)
			ins++
		case Anusvara: // before the run of preceding below-vowels
			p := i
			for p > 0 && categoryAt(defs, p-1) == VowelBelow {
				p--
			}
			moveTo(defs, i, p)
		}
	}
}
