package shaping

import "github.com/emirpasic/gods/lists/arraylist"

var khmerClasses = []classRule{
	{ConsonantS1, []span{
		{0x1780, 0x1782}, {0x1784, 0x1787}, {0x1789, 0x178C}, {0x178E, 0x1793},
		{0x1795, 0x1798}, {0x179B, 0x179D}, one(0x17A0), one(0x17A2),
	}},
	{ConsonantS2, []span{
		one(0x179A), one(0x1783), one(0x1788), one(0x178D), one(0x1794),
		one(0x1799), {0x179E, 0x179F}, one(0x17A1),
	}},
	{IndependentVowel, []span{{0x17B4, 0x17B5}}},
	{IndependentVowelS1, []span{{0x17A3, 0x17B3}}},
	{VowelAbove, []span{{0x17B7, 0x17BA}, one(0x17BE)}},
	{VowelBelow, []span{{0x17BB, 0x17BD}}},
	{VowelPre, []span{{0x17C1, 0x17C3}}},
	{VowelPost, []span{one(0x17B6), {0x17BF, 0x17C0}, {0x17C4, 0x17C5}}},
	{Coeng, []span{one(0x17D2)}},
	{RegisterShifter, []span{{0x17C9, 0x17CA}}},
	{Robat, []span{one(0x17CC)}},
	{SignAbove, []span{one(0x17C6), one(0x17CB), {0x17CD, 0x17D1}, one(0x17DD)}},
	{SignPost, []span{{0x17C7, 0x17C8}}},
	{SignAboveNum, []span{one(0x17D3)}},
	{Punctuation, []span{{0x17D4, 0x17DA}, one(0x17DC), {0x19E0, 0x19FF}}},
	{Currency, []span{one(0x17DB)}},
	{Number, []span{{0x17E0, 0x17E9}, {0x17F0, 0x17F9}}},
	{Reserved, []span{{0x17DE, 0x17DF}, {0x17EA, 0x17EF}, {0x17FA, 0x17FF}}},
	{Joiner, joiners},
	{VariationSelector, variationSelectors},
	{WordJoiner, []span{one(0x2060)}},
	{NonJoiner, []span{one(0x200C)}},
	{Whitespace, whitespace},
}

// Khmer reorders text in Khmer script: pre-base vowels move to the front of
// their cluster.
var Khmer = &Script{
	Name: "Khmer",
	Classify: func(input []uint16, at int) Category {
		return classify(khmerClasses, input[at], Other)
	},
	IsBreak: breakOn(Whitespace, NonJoiner),
	Reorder: func(defs *arraylist.List) { preBaseToFront(defs) },
}

// IsKhmerDependentVowel is true for the Khmer dependent vowel signs 17B6–17C5.
func IsKhmerDependentVowel(u uint16) bool {
	return u >= 0x17B6 && u <= 0x17C5
}
