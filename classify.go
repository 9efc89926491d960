package ushape

import (
	"unicode"

	"github.com/npillmayer/ushape/bidi"
	"golang.org/x/text/unicode/rangetable"
)

// IsRTL is true for code units of strong right-to-left direction.
func IsRTL(u uint16) bool {
	return bidi.IsRTL(u)
}

// IsCJK is true for code units of the CJK ideograph, radical, stroke, symbol,
// punctuation and compatibility blocks, and of the half- and fullwidth forms.
func IsCJK(u uint16) bool {
	return unicode.Is(cjkTable, rune(u))
}

var cjkTable = rangetable.Merge(
	block(0x4E00, 0x9FFF), // CJK Unified Ideographs
	block(0x3400, 0x4DBF), // CJK Unified Ideographs Extension A
	block(0xF900, 0xFAFF), // CJK Compatibility Ideographs
	block(0x2F00, 0x2FDF), // Kangxi Radicals
	block(0x2E80, 0x2EFF), // CJK Radicals Supplement
	block(0x31C0, 0x31EF), // CJK Strokes
	block(0x2FF0, 0x2FFF), // Ideographic Description Characters
	block(0x3000, 0x303F), // CJK Symbols and Punctuation
	block(0xFE30, 0xFE4F), // CJK Compatibility Forms
	block(0xFF00, 0xFFEF), // Halfwidth and Fullwidth Forms
	block(0xFE50, 0xFE6F), // Small Form Variants
	block(0xFE10, 0xFE1F), // Vertical Forms
	block(0x3200, 0x32FF), // Enclosed CJK Letters and Months
	block(0x3300, 0x33FF), // CJK Compatibility
)

func block(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}},
	}
}
