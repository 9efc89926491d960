package ushape

import (
	"unicode/utf16"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/ushape/arabic"
	"github.com/npillmayer/ushape/bidi"
	"github.com/npillmayer/ushape/shaping"
)

// clusterPass is a reordering pass for one complex script.
type clusterPass struct {
	script language.Script
	shape  func([]uint16)
}

// clusterPasses run in this order after Arabic shaping.
var clusterPasses = []clusterPass{
	{language.Buginese, func(u []uint16) { shaping.Shape(u, shaping.Buginese) }},
	{language.Javanese, func(u []uint16) { shaping.Shape(u, shaping.Javanese) }},
	{language.Myanmar, func(u []uint16) { shaping.Shape(u, shaping.Myanmar) }},
	{language.Tamil, shaping.ShapeTamil},
	{language.Tibetan, func(u []uint16) { shaping.Shape(u, shaping.Tibetan) }},
	{language.Khmer, func(u []uint16) { shaping.Shape(u, shaping.Khmer) }},
}

// ShapeUnicode transforms source, a sequence of UTF-16 code units, for display.
// source is not modified. Depending on opts, the result may be shorter
// (ligatures, removed tashkeel) or longer (unshaping) than source.
//
// Letter options other than LettersNoop enable Arabic shaping and the complex
// script passes. DirectionOutputBidi enables bidirectional reordering.
func ShapeUnicode(source []uint16, opts Options) []uint16 {
	out := make([]uint16, len(source))
	copy(out, source)
	CT().Debugf("ushape: shaping %d code units with options %s", len(source), opts)
	if opts&LettersMask != LettersNoop {
		out = arabic.Shape(out, arabicConfig(opts))
		scripts := scriptsOf(out)
		for _, pass := range clusterPasses {
			if scripts[pass.script] {
				CT().Debugf("ushape: reordering %s clusters", pass.script)
				pass.shape(out)
			}
		}
	}
	if opts&DirectionOutputBidi != 0 {
		out = bidi.Reorder(out)
	}
	return out
}

// ShapeString is a convenience wrapper of ShapeUnicode for Go strings.
func ShapeString(s string, opts Options) string {
	u := utf16.Encode([]rune(s))
	return string(utf16.Decode(ShapeUnicode(u, opts)))
}

// scriptsOf collects the scripts present in text.
func scriptsOf(text []uint16) map[language.Script]bool {
	scripts := make(map[language.Script]bool)
	for _, u := range text {
		if utf16.IsSurrogate(rune(u)) {
			continue
		}
		scripts[language.LookupScript(rune(u))] = true
	}
	return scripts
}
