package arabic

// Bits of a link value.
const (
	LinkR      uint16 = 1   // joins to the right
	LinkL      uint16 = 2   // joins to the left
	APresent   uint16 = 8   // presentation form lives in Presentation Forms-A
	Irrelevant uint16 = 4   // transparent for joining, e.g. diacritics
	LamType    uint16 = 16  // Lam, may form a ligature with a following Alef
	AlefType   uint16 = 32  // Alef
	Shadda     uint16 = 64  // Shadda, combines with a vowel mark
	CShadda    uint16 = 128 // vowel mark which combines with Shadda
	Combine    uint16 = Shadda | CShadda
)

// Special code units.
const (
	lamChar          uint16 = 0x0644
	shadda06         uint16 = 0x0651
	tatweelChar      uint16 = 0x0640
	spaceChar        uint16 = 0x0020
	newTailChar      uint16 = 0xFE73
	shaddaChar       uint16 = 0xFE7C
	shaddaTatweel    uint16 = 0xFE7D
	lamAlefSpaceSub  uint16 = 0xFFFF // placeholder for the Alef absorbed by a ligature
	tashkeelSpaceSub uint16 = 0xFFFE // placeholder for removed tashkeel
)

// Link returns the link value of a code unit. Code units outside of the Arabic
// block, the presentation form blocks and a few joiner controls have link value 0.
func Link(ch uint16) uint16 {
	switch {
	case ch >= 0x0622 && ch <= 0x06D3:
		return araLink[ch-0x0622]
	case ch == 0x200D: // ZWJ
		return 3
	case ch >= 0x206D && ch <= 0x206F:
		return 4
	case ch >= 0xFB50 && ch <= 0xFC62:
		return uint16(presALink[ch-0xFB50])
	case ch >= 0xFE70 && ch <= 0xFEFC:
		return uint16(presBLink[ch-0xFE70])
	}
	return 0
}

// changeLamAlef maps an Alef to the private code of the Lam-Alef ligature it forms.
func changeLamAlef(ch uint16) uint16 {
	switch ch {
	case 0x0622:
		return 0x065C
	case 0x0623:
		return 0x065D
	case 0x0625:
		return 0x065E
	case 0x0627:
		return 0x065F
	}
	return 0
}

func isTashkeel(ch uint16) bool {
	return ch >= 0x064B && ch <= 0x0652
}

func isTashkeelFE(ch uint16) bool {
	return ch >= 0xFE70 && ch <= 0xFE7F
}

func isAlef(ch uint16) bool {
	return ch == 0x0622 || ch == 0x0623 || ch == 0x0625 || ch == 0x0627
}

func isLamAlef(ch uint16) bool {
	return ch >= 0xFEF5 && ch <= 0xFEFC
}

// tashkeelOnTatweel returns 1 for a tashkeel-on-tatweel form in the FE range,
// 2 for a Shadda-on-tatweel form, and 0 otherwise.
func tashkeelOnTatweel(ch uint16) int {
	if ch >= 0xFE70 && ch <= 0xFE7F && ch != newTailChar && ch != 0xFE75 && ch != shaddaTatweel {
		return int(tashkeelMedial[ch-0xFE70])
	}
	if (ch >= 0xFCF2 && ch <= 0xFCF4) || ch == shaddaTatweel {
		return 2
	}
	return 0
}

// isolatedTashkeel returns 1 for isolated tashkeel forms.
func isolatedTashkeel(ch uint16) int {
	if ch >= 0xFE70 && ch <= 0xFE7F && ch != newTailChar && ch != 0xFE75 {
		return 1 - int(tashkeelMedial[ch-0xFE70])
	}
	if ch >= 0xFC5E && ch <= 0xFC63 {
		return 1
	}
	return 0
}
