package shaping

import "github.com/emirpasic/gods/lists/arraylist"

var tibetanClasses = []classRule{
	{HeadLetter, []span{{0x0F40, 0x0F6C}, {0x0F88, 0x0F8C}}},
	{VowelAbove, []span{one(0x0F72), {0x0F7A, 0x0F7D}, one(0x0F80)}},
	{VowelBelow, []span{one(0x0F71), one(0x0F74)}},
	{VowelCompound, []span{one(0x0F73), {0x0F75, 0x0F79}, one(0x0F81)}},
	{Whitespace, whitespace},
}

// Tibetan reorders text in Tibetan script. Every code unit forms a
// definition of its own; vowel signs move in front of the nearest preceding
// head letter. Vowels without a head letter stay where they are.
var Tibetan = &Script{
	Name: "Tibetan",
	Classify: func(input []uint16, at int) Category {
		return classify(tibetanClasses, input[at], Other)
	},
	Span:    func([]uint16, int, Category) int { return 1 },
	IsBreak: breakOn(Whitespace),
	Reorder: reorderTibetan,
}

func isHeadLetter(c Category) bool {
	return c == HeadLetter
}

func reorderTibetan(defs *arraylist.List) {
	for i := 0; i < defs.Size(); i++ {
		switch categoryAt(defs, i) {
		case VowelAbove, VowelBelow, VowelCompound:
			if head := backToBase(defs, i, isHeadLetter); head >= 0 {
				moveTo(defs, i, head)
			}
		}
	}
}
