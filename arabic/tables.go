package arabic

// Link values and conversion tables for the Arabic block (0622–06D3) and the
// Arabic presentation forms. A link value holds the joining bits in its low byte
// and the offset of the isolated presentation form in its high byte.

// araLink covers 0622–06D3.
var araLink = [...]uint16{
	0x1121, 0x1321, 0x1501, 0x1721, 0x1903, 0x1D21, 0x1F03, 0x2301,
	0x2503, 0x2903, 0x2D03, 0x3103, 0x3503, 0x3901, 0x3B01, 0x3D01,
	0x3F01, 0x4103, 0x4503, 0x4903, 0x4D03, 0x5103, 0x5503, 0x5903,
	0x5D03, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0003, 0x6103,
	0x6503, 0x6903, 0x6D13, 0x7103, 0x7503, 0x7903, 0x7D01, 0x7F01,
	0x8103, 0x0104, 0x0184, 0x0184, 0x0184, 0x0184, 0x0184, 0x0344,
	0x0104, 0x0704, 0x0804, 0x0804, 0x0104, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x8501, 0x8701, 0x8901, 0x8B01, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0604, 0x0009,
	0x0021, 0x0021, 0x0000, 0x0021, 0x0001, 0x0001, 0x0003, 0x160B,
	0x0E0B, 0x020B, 0x0003, 0x0003, 0x060B, 0x0003, 0x0003, 0x0003,
	0x0003, 0x0003, 0x0003, 0x0003, 0x2A0B, 0x0003, 0x3809, 0x0001,
	0x0001, 0x0001, 0x3409, 0x3209, 0x3609, 0x0001, 0x0001, 0x3C09,
	0x0001, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001, 0x3A09, 0x0001,
	0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003,
	0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x3E0B,
	0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x420B, 0x0003, 0x0003,
	0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003,
	0x4E09, 0x500B, 0x0003, 0x0003, 0x5A0B, 0x0003, 0x5409, 0x560B,
	0x0001, 0x0001, 0x0001, 0x9009, 0x8909, 0x8709, 0x8B09, 0x9209,
	0x0001, 0x8E09, 0xAC0B, 0x0001, 0x0003, 0x0003, 0x940B, 0x0003,
	0x5E09, 0x6009,
}

// presALink covers FB50–FC62 (Presentation Forms-A).
var presALink = [...]uint8{
	0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
	0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x04, 0x04,
}

// presBLink covers FE70–FEFC (Presentation Forms-B).
var presBLink = [...]uint8{
	0x03, 0x03, 0x03, 0x00, 0x03, 0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03,
	0x03, 0x03, 0x03, 0x03, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x00, 0x01, 0x02, 0x03, 0x00,
	0x01, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x02,
	0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00,
}

// convertFBto06 maps FB50–FBFF back to the 06xx block; 0 means no mapping.
var convertFBto06 = [...]uint16{
	0x0671, 0x0671, 0x067B, 0x067B, 0x067B, 0x067B, 0x067E, 0x067E,
	0x067E, 0x067E, 0x0000, 0x0000, 0x0000, 0x0000, 0x067A, 0x067A,
	0x067A, 0x067A, 0x0000, 0x0000, 0x0000, 0x0000, 0x0679, 0x0679,
	0x0679, 0x0679, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0686, 0x0686, 0x0686, 0x0686, 0x0000, 0x0000,
	0x0000, 0x0000, 0x068D, 0x068D, 0x068C, 0x068C, 0x068E, 0x068E,
	0x0688, 0x0688, 0x0698, 0x0698, 0x0691, 0x0691, 0x06A9, 0x06A9,
	0x06A9, 0x06A9, 0x06AF, 0x06AF, 0x06AF, 0x06AF, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x06BA, 0x06BA,
	0x06BB, 0x06BB, 0x06BB, 0x06BB, 0x06C0, 0x06C0, 0x06C1, 0x06C1,
	0x06C1, 0x06C1, 0x06BE, 0x06BE, 0x06BE, 0x06BE, 0x06D2, 0x06D2,
	0x06D3, 0x06D3, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x06C7,
	0x06C7, 0x06C6, 0x06C6, 0x06C8, 0x06C8, 0x0000, 0x06CB, 0x06CB,
	0x06C5, 0x06C5, 0x06C9, 0x06C9, 0x06D0, 0x06D0, 0x06D0, 0x06D0,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x06CC, 0x06CC, 0x06CC, 0x06CC,
}

// convertFEto06 maps FE70–FEFC back to the 06xx block.
var convertFEto06 = [...]uint16{
	0x064B, 0x064B, 0x064C, 0x064C, 0x064D, 0x064D, 0x064E, 0x064E,
	0x064F, 0x064F, 0x0650, 0x0650, 0x0651, 0x0651, 0x0652, 0x0652,
	0x0621, 0x0622, 0x0622, 0x0623, 0x0623, 0x0624, 0x0624, 0x0625,
	0x0625, 0x0626, 0x0626, 0x0626, 0x0626, 0x0627, 0x0627, 0x0628,
	0x0628, 0x0628, 0x0628, 0x0629, 0x0629, 0x062A, 0x062A, 0x062A,
	0x062A, 0x062B, 0x062B, 0x062B, 0x062B, 0x062C, 0x062C, 0x062C,
	0x062C, 0x062D, 0x062D, 0x062D, 0x062D, 0x062E, 0x062E, 0x062E,
	0x062E, 0x062F, 0x062F, 0x0630, 0x0630, 0x0631, 0x0631, 0x0632,
	0x0632, 0x0633, 0x0633, 0x0633, 0x0633, 0x0634, 0x0634, 0x0634,
	0x0634, 0x0635, 0x0635, 0x0635, 0x0635, 0x0636, 0x0636, 0x0636,
	0x0636, 0x0637, 0x0637, 0x0637, 0x0637, 0x0638, 0x0638, 0x0638,
	0x0638, 0x0639, 0x0639, 0x0639, 0x0639, 0x063A, 0x063A, 0x063A,
	0x063A, 0x0641, 0x0641, 0x0641, 0x0641, 0x0642, 0x0642, 0x0642,
	0x0642, 0x0643, 0x0643, 0x0643, 0x0643, 0x0644, 0x0644, 0x0644,
	0x0644, 0x0645, 0x0645, 0x0645, 0x0645, 0x0646, 0x0646, 0x0646,
	0x0646, 0x0647, 0x0647, 0x0647, 0x0647, 0x0648, 0x0648, 0x0649,
	0x0649, 0x064A, 0x064A, 0x064A, 0x064A, 0x065C, 0x065C, 0x065D,
	0x065D, 0x065E, 0x065E, 0x065F, 0x065F,
}

// convertLamAlef gives the Alef of the Lam-Alef ligatures FEF5–FEFC.
var convertLamAlef = [...]uint16{
	0x0622, 0x0622, 0x0623, 0x0623, 0x0625, 0x0625, 0x0627, 0x0627,
}

var tashkeelMedial = [...]uint8{
	0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1,
}

var irrelevantPos = [...]uint16{
	0x0, 0x2, 0x4, 0x6, 0x8, 0xA, 0xC, 0xE,
}

// shapeTable is indexed by the joining bits of next, last and current link.
var shapeTable = [4][4][4]uint16{
	{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 3},
		{0, 1, 0, 1},
	},
	{
		{0, 0, 2, 2},
		{0, 0, 1, 2},
		{0, 1, 1, 2},
		{0, 1, 1, 3},
	},
	{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 3},
		{0, 1, 0, 3},
	},
	{
		{0, 0, 1, 2},
		{0, 0, 1, 2},
		{0, 1, 1, 2},
		{0, 1, 1, 3},
	},
}
