package arabic

import "fmt"

// LetterMode selects what happens to Arabic letters.
type LetterMode uint8

// Letter modes.
const (
	LettersNoop           LetterMode = iota // leave letters untouched
	ShapeLetters                            // shape letters, tashkeel on tatweel
	UnshapeLetters                          // map presentation forms back to 06xx
	ShapeTashkeelIsolated                   // shape letters, tashkeel stays isolated
)

// LamAlefMode selects how the space freed by a Lam-Alef ligature is handled.
type LamAlefMode uint8

// LamAlef memory modes. Only Resize is implemented; the other modes behave
// like Resize.
const (
	LamAlefResize LamAlefMode = iota
	LamAlefNear
	LamAlefEnd
	LamAlefBegin
	LamAlefAuto
)

// TashkeelMode selects how removed or replaced tashkeel are handled.
type TashkeelMode uint8

// Tashkeel memory modes. Any mode other than TashkeelKeep and
// TashkeelReplaceByTatweel removes tashkeel (except Shadda) from the output.
const (
	TashkeelKeep TashkeelMode = iota
	TashkeelBegin
	TashkeelEnd
	TashkeelResize
	TashkeelReplaceByTatweel
)

// Config holds the shaping parameters for Shape.
type Config struct {
	Letters   LetterMode
	LamAlef   LamAlefMode
	Tashkeel  TashkeelMode
	VisualLTR bool // text is in visual left-to-right order, otherwise logical
	Aggregate bool // aggregate Shadda + vowel mark pairs before shaping
}

func (cfg Config) String() string {
	return fmt.Sprintf("[letters=%d lamalef=%d tashkeel=%d visual=%v aggregate=%v]",
		cfg.Letters, cfg.LamAlef, cfg.Tashkeel, cfg.VisualLTR, cfg.Aggregate)
}

// Shape converts Arabic letters of source to their presentation forms, as
// selected by cfg. The source buffer is not modified. The result may be
// shorter than source (ligatures, removed tashkeel) or, when unshaping,
// longer.
func Shape(source []uint16, cfg Config) []uint16 {
	if len(source) == 0 {
		return []uint16{}
	}
	src := source
	if cfg.Aggregate {
		src = aggregateTashkeel(source, cfg)
	}
	size := OutputSize(src, cfg)
	buf := make([]uint16, len(src), max(size, len(src)))
	copy(buf, src)
	tracer().Debugf("arabic: shaping %d code units with %s", len(buf), cfg)
	logical := !cfg.VisualLTR
	if logical {
		invertBuffer(buf)
	}
	switch cfg.Letters {
	case ShapeLetters:
		if cfg.Tashkeel != TashkeelKeep && cfg.Tashkeel != TashkeelReplaceByTatweel {
			shapeLinks(buf, 2) // remove tashkeel
		} else {
			shapeLinks(buf, 1)
			if cfg.Tashkeel == TashkeelReplaceByTatweel {
				replaceTashkeelByTatweel(buf)
			}
		}
	case ShapeTashkeelIsolated:
		shapeLinks(buf, 0)
	case UnshapeLetters:
		buf = deshape(buf, cfg)
	}
	if logical {
		invertBuffer(buf)
	}
	out := make([]uint16, 0, size)
	for _, ch := range buf {
		if ch != lamAlefSpaceSub && ch != tashkeelSpaceSub {
			out = append(out, ch)
		}
	}
	return out
}

// OutputSize calculates the number of code units Shape will produce for
// source. It is exact for shaping with LamAlef mode Resize and for
// unshaping; otherwise it is an upper bound.
func OutputSize(source []uint16, cfg Config) int {
	size := len(source)
	shaping := cfg.Letters == ShapeLetters || cfg.Letters == ShapeTashkeelIsolated
	lamAlefOption := shaping && cfg.LamAlef == LamAlefResize
	tashkeelOption := cfg.Letters == ShapeLetters && cfg.Tashkeel == TashkeelResize
	if lamAlefOption || tashkeelOption {
		last := len(source) - 1
		for i, ch := range source {
			var collapses bool
			if cfg.VisualLTR {
				collapses = isAlef(ch) && i < last && source[i+1] == lamChar
			} else {
				collapses = ch == lamChar && i < last && isAlef(source[i+1])
			}
			if (collapses || isTashkeelFE(ch)) && size > 0 {
				size--
			}
		}
	}
	if cfg.Letters == UnshapeLetters && cfg.LamAlef == LamAlefResize {
		for _, ch := range source {
			if isLamAlef(ch) {
				size++
			}
		}
	}
	return size
}

// countSpaces counts the spaces at the beginning and at the end of a buffer.
// For a buffer consisting of spaces only, all spaces count as leading.
func countSpaces(buf []uint16) (left, right int) {
	n := len(buf)
	for left < n && buf[left] == spaceChar {
		left++
	}
	if left < n {
		for buf[n-1-right] == spaceChar {
			right++
		}
	}
	return
}

// invertBuffer reverses buf between its leading and trailing spaces.
func invertBuffer(buf []uint16) {
	left, right := countSpaces(buf)
	for i, j := left, len(buf)-right-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// shapeLinks walks dest from its end to its start and replaces every Arabic
// letter by the presentation form fitting its joining neighbours. dest is
// expected in visual order.
//
// tashkeelFlag 0 keeps tashkeel isolated, 1 shapes tashkeel onto joining
// neighbours, 2 removes tashkeel (Shadda excepted).
func shapeLinks(dest []uint16, tashkeelFlag int) {
	if len(dest) == 0 {
		return
	}
	const iEnd = -1
	var prevLink, lastLink, nextLink uint16
	i := len(dest) - 1
	lastPos := i
	nx := -2
	currLink := Link(dest[i])
	for {
		if currLink&0xFF00 > 0 || Link(dest[i])&Irrelevant != 0 {
			nw := i - 1
			for nx < 0 { // find the next joining neighbour
				if nw == iEnd {
					nextLink = 0
					nx = 3000
				} else {
					nextLink = Link(dest[nw])
					if nextLink&Irrelevant == 0 {
						nx = nw
					} else {
						nw--
					}
				}
			}
			if currLink&AlefType > 0 && lastLink&LamType > 0 {
				lamAlef := changeLamAlef(dest[i])
				if lamAlef != 0 {
					dest[i] = lamAlefSpaceSub
					dest[lastPos] = lamAlef
					i = lastPos
				}
				lastLink = prevLink
				currLink = Link(lamAlef)
			}
			shape := shapeTable[nextLink&(LinkR|LinkL)][lastLink&(LinkR|LinkL)][currLink&(LinkR|LinkL)]
			if currLink&(LinkR|LinkL) == 1 {
				shape &= 1
			} else if isTashkeel(dest[i]) {
				shape = tashkeelShape(dest[i], lastLink, nextLink, tashkeelFlag)
			}
			if (dest[i] ^ 0x0600) < 0x100 {
				switch {
				case isTashkeel(dest[i]):
					if tashkeelFlag == 2 && dest[i] != shadda06 {
						dest[i] = tashkeelSpaceSub
						break
					}
					ind := int(dest[i]) - 0x064B
					if ind < 0 || ind >= len(irrelevantPos) {
						panic(fmt.Sprintf("arabic: tashkeel %#04x outside of irrelevance table", dest[i]))
					}
					dest[i] = 0xFE70 + irrelevantPos[ind] + shape
				case currLink&APresent > 0:
					dest[i] = 0xFB50 + (currLink >> 8) + shape
				case currLink>>8 > 0 && currLink&Irrelevant == 0:
					dest[i] = 0xFE70 + (currLink >> 8) + shape
				}
			}
		}
		if currLink&Irrelevant == 0 {
			prevLink = lastLink
			lastLink = currLink
			lastPos = i
		}
		ii := i - 1
		if ii >= 0 {
			i--
		}
		if ii == nx {
			currLink = nextLink
			nx = -2
		} else if ii != iEnd {
			currLink = Link(dest[i])
		}
		if ii == iEnd {
			break
		}
	}
}

// tashkeelShape selects the form of a tashkeel character: 1 for medial
// (on tatweel), 0 for isolated.
func tashkeelShape(ch, lastLink, nextLink uint16, tashkeelFlag int) uint16 {
	if lastLink&LinkL > 0 && nextLink&LinkR > 0 && tashkeelFlag == 1 &&
		ch != 0x064C && ch != 0x064D {
		if nextLink&AlefType == AlefType && lastLink&LamType == LamType {
			return 0
		}
		return 1
	}
	if tashkeelFlag == 2 && ch == shadda06 {
		return 1
	}
	return 0
}

// replaceTashkeelByTatweel replaces tashkeel on tatweel by Tatweel, Shadda
// combinations on tatweel by Shadda-on-Tatweel, and isolated tashkeel other
// than Shadda by a space.
func replaceTashkeelByTatweel(dest []uint16) {
	for i, ch := range dest {
		switch {
		case tashkeelOnTatweel(ch) == 1:
			dest[i] = tatweelChar
		case tashkeelOnTatweel(ch) == 2:
			dest[i] = shaddaTatweel
		case isolatedTashkeel(ch) != 0 && ch != shaddaChar:
			dest[i] = spaceChar
		}
	}
}
