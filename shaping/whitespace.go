package shaping

// whitespace holds the code units which terminate a cluster.
var whitespace = []span{
	one(0x0020), // space
	one(0x0009), // tab
	one(0x000A), // line feed
	one(0x000D), // carriage return
	one(0x000C), // form feed
	one(0x0085), // next line
	one(0x3000), // ideographic space
	one(0x200B), // zero width space
	one(0x00A0), // no-break space
	one(0x0F0C), // Tibetan non-breaking tsheg
	one(0x202F), // narrow no-break space
	one(0x2060), // word joiner
	one(0xFEFF), // zero width no-break space
}

// IsWhitespace is true for code units which delimit clusters.
func IsWhitespace(u uint16) bool {
	for _, s := range whitespace {
		if u == s.lo {
			return true
		}
	}
	return false
}

// whitespaceExcept returns the whitespace set without the given code unit.
func whitespaceExcept(u uint16) []span {
	ws := make([]span, 0, len(whitespace))
	for _, s := range whitespace {
		if s.lo != u {
			ws = append(ws, s)
		}
	}
	return ws
}
