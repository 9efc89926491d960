package shaping

import "github.com/emirpasic/gods/lists/arraylist"

var bugineseClasses = []classRule{
	{Consonant, []span{{0x1A00, 0x1A16}}},
	{GenericBase, genericBases},
	{Joiner, joiners},
	{Reserved, []span{{0x1A1C, 0x1A1D}}},
	{Symbol, []span{{0x1A1E, 0x1A1F}, one(0xA9CF)}},
	{VowelAbove, []span{one(0x1A17), one(0x1A1B)}},
	{VowelBelow, []span{one(0x1A18)}},
	{VowelPre, []span{one(0x1A19)}},
	{VowelPost, []span{one(0x1A1A)}},
	{VariationSelector, variationSelectors},
	{WordJoiner, []span{one(0x2060)}},
	{NonJoiner, []span{one(0x200C)}},
	{Whitespace, whitespaceExcept(0x0F0C)},
}

// Buginese reorders text in Buginese (Lontara) script. Pre-base vowels move
// to the front of their cluster, other vowel signs move in front of the
// nearest preceding consonant or generic base.
var Buginese = &Script{
	Name: "Buginese",
	Classify: func(input []uint16, at int) Category {
		return classify(bugineseClasses, input[at], Other)
	},
	IsBreak: breakOn(Whitespace, NonJoiner),
	Reorder: reorderBuginese,
}

func isBugineseBase(c Category) bool {
	return c == Consonant || c == GenericBase
}

func reorderBuginese(defs *arraylist.List) {
	ins := 0
	for i := 0; i < defs.Size(); i++ {
		switch categoryAt(defs, i) {
		case VowelPre:
			moveTo(defs, i, ins)
			ins++
		case VowelAbove, VowelBelow, VowelPost:
			if base := backToBase(defs, i, isBugineseBase); base >= 0 {
				moveTo(defs, i, base)
			}
		}
	}
}
