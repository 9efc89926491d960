package shaping

import "github.com/emirpasic/gods/lists/arraylist"

var genericBases = []span{
	one(0x00A0), one(0x00D7), {0x2012, 0x2015}, one(0x2022), one(0x25CC),
	{0x25FB, 0x25FE},
}

var joiners = []span{one(0x200D), one(0x034F)}

var variationSelectors = []span{{0xFE00, 0xFE0F}}

var javaneseClasses = []classRule{
	{Consonant, []span{one(0xA984), {0xA989, 0xA98B}, {0xA98F, 0xA9B2}}},
	{GenericBase, genericBases},
	{Halant, []span{one(0xA9C0)}},
	{IndependentVowel, []span{{0xA985, 0xA988}, {0xA98C, 0xA98E}}},
	{Joiner, joiners},
	{Modifier, []span{{0xA980, 0xA983}}},
	{MedialRa, []span{one(0xA9BF)}},
	{MedialYa, []span{one(0xA9BE)}},
	{Number, []span{one(0xA9B3)}},
	{Punctuation, []span{{0xA9C1, 0xA9CD}}},
	{Reserved, []span{one(0xA9CE), {0xA9DA, 0xA9DD}}},
	{Symbol, []span{one(0xA9CF), {0xA9DE, 0xA9DF}}},
	{VowelAbove, []span{{0xA9B6, 0xA9B7}, one(0xA9BC)}},
	{VowelBelow, []span{{0xA9B8, 0xA9B9}}},
	{VowelPre, []span{{0xA9BA, 0xA9BB}}},
	{VowelPost, []span{{0xA9B4, 0xA9B5}, one(0xA9BD)}},
	{VariationSelector, variationSelectors},
	{WordJoiner, []span{one(0x2060)}},
	{NonJoiner, []span{one(0x200C)}},
	{Whitespace, whitespace},
}

// Javanese reorders text in Javanese script. Runs of code units of the same
// category form a definition, and pre-base vowels move to the front of their
// cluster.
var Javanese = &Script{
	Name: "Javanese",
	Classify: func(input []uint16, at int) Category {
		return classify(javaneseClasses, input[at], Other)
	},
	IsBreak: breakOn(Whitespace, NonJoiner),
	Reorder: func(defs *arraylist.List) { preBaseToFront(defs) },
}
