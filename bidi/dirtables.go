package bidi

import "unicode"

// Direction class tables. The three sets are disjoint; a code unit in none of
// them is strong left-to-right. The sets are curated and do not follow the
// Bidi_Class property of the UCD one to one; internal/gen/dirgen reports
// where the UCD classes differ from them.

// rtlTable holds the strong right-to-left code units (RandALCat).
var rtlTable = &unicode.RangeTable{ // 45 entries
	R16: []unicode.Range16{
		{0x05be, 0x05be, 1},
		{0x05c0, 0x05c0, 1},
		{0x05c3, 0x05c3, 1},
		{0x05c6, 0x05c6, 1},
		{0x05d0, 0x05ea, 1},
		{0x05f0, 0x05f4, 1},
		{0x0608, 0x0608, 1},
		{0x060b, 0x060b, 1},
		{0x060d, 0x060d, 1},
		{0x061b, 0x061b, 1},
		{0x061e, 0x064a, 1},
		{0x066d, 0x066f, 1},
		{0x0671, 0x06d5, 1},
		{0x06e5, 0x06e6, 1},
		{0x06ee, 0x06ef, 1},
		{0x06fa, 0x070d, 1},
		{0x0710, 0x0710, 1},
		{0x0712, 0x072f, 1},
		{0x074d, 0x07a5, 1},
		{0x07b1, 0x07b1, 1},
		{0x07c0, 0x07ea, 1},
		{0x07f4, 0x07f5, 1},
		{0x07fa, 0x07fa, 1},
		{0x0800, 0x0815, 1},
		{0x081a, 0x081a, 1},
		{0x0824, 0x0824, 1},
		{0x0828, 0x0828, 1},
		{0x0830, 0x083e, 1},
		{0x0840, 0x0858, 1},
		{0x085e, 0x085e, 1},
		{0x200f, 0x200f, 1},
		{0xfb1d, 0xfb1d, 1},
		{0xfb1f, 0xfb28, 1},
		{0xfb2a, 0xfb36, 1},
		{0xfb38, 0xfb3c, 1},
		{0xfb3e, 0xfb3e, 1},
		{0xfb40, 0xfb41, 1},
		{0xfb43, 0xfb44, 1},
		{0xfb46, 0xfbc1, 1},
		{0xfbd3, 0xfd3d, 1},
		{0xfd50, 0xfd8f, 1},
		{0xfd92, 0xfdc7, 1},
		{0xfdf0, 0xfdfc, 1},
		{0xfe70, 0xfe74, 1},
		{0xfe76, 0xfefc, 1},
	},
}

// neutralTable holds separators, whitespace and other neutrals.
var neutralTable = &unicode.RangeTable{ // 137 entries
	R16: []unicode.Range16{
		{0x0009, 0x000d, 1},
		{0x001c, 0x0022, 1},
		{0x0026, 0x002a, 1},
		{0x003b, 0x0040, 1},
		{0x005b, 0x0060, 1},
		{0x007b, 0x007e, 1},
		{0x0085, 0x0085, 1},
		{0x00a1, 0x00a1, 1},
		{0x00a6, 0x00a9, 1},
		{0x00ab, 0x00ac, 1},
		{0x00ae, 0x00af, 1},
		{0x00b4, 0x00b4, 1},
		{0x00b6, 0x00b8, 1},
		{0x00bb, 0x00bf, 1},
		{0x00d7, 0x00d7, 1},
		{0x00f7, 0x00f7, 1},
		{0x02b9, 0x02ba, 1},
		{0x02c2, 0x02cf, 1},
		{0x02d2, 0x02df, 1},
		{0x02e5, 0x02ed, 1},
		{0x02ef, 0x02ff, 1},
		{0x0374, 0x0375, 1},
		{0x037e, 0x037e, 1},
		{0x0384, 0x0385, 1},
		{0x0387, 0x0387, 1},
		{0x03f6, 0x03f6, 1},
		{0x058a, 0x058a, 1},
		{0x0606, 0x0607, 1},
		{0x060e, 0x060f, 1},
		{0x06de, 0x06de, 1},
		{0x06e9, 0x06e9, 1},
		{0x07f6, 0x07f9, 1},
		{0x0bf3, 0x0bf8, 1},
		{0x0bfa, 0x0bfa, 1},
		{0x0c78, 0x0c7e, 1},
		{0x0f3a, 0x0f3d, 1},
		{0x1390, 0x1399, 1},
		{0x1400, 0x1400, 1},
		{0x1680, 0x1680, 1},
		{0x169b, 0x169c, 1},
		{0x17f0, 0x17f9, 1},
		{0x1800, 0x180a, 1},
		{0x180e, 0x180e, 1},
		{0x1940, 0x1940, 1},
		{0x1944, 0x1945, 1},
		{0x19de, 0x19ff, 1},
		{0x1fbd, 0x1fbd, 1},
		{0x1fbf, 0x1fc1, 1},
		{0x1fcd, 0x1fcf, 1},
		{0x1fdd, 0x1fdf, 1},
		{0x1fed, 0x1fef, 1},
		{0x1ffd, 0x1ffe, 1},
		{0x2000, 0x200a, 1},
		{0x2010, 0x202e, 1},
		{0x2035, 0x2043, 1},
		{0x2045, 0x205f, 1},
		{0x207c, 0x207e, 1},
		{0x208c, 0x208e, 1},
		{0x2100, 0x2101, 1},
		{0x2103, 0x2106, 1},
		{0x2108, 0x2109, 1},
		{0x2114, 0x2114, 1},
		{0x2116, 0x2118, 1},
		{0x211e, 0x2123, 1},
		{0x2125, 0x2125, 1},
		{0x2127, 0x2127, 1},
		{0x2129, 0x2129, 1},
		{0x213a, 0x213b, 1},
		{0x2140, 0x2144, 1},
		{0x214a, 0x214d, 1},
		{0x2150, 0x215f, 1},
		{0x2189, 0x2189, 1},
		{0x2190, 0x2211, 1},
		{0x2214, 0x2335, 1},
		{0x237b, 0x2394, 1},
		{0x2396, 0x23f3, 1},
		{0x2400, 0x2426, 1},
		{0x2440, 0x244a, 1},
		{0x2460, 0x2487, 1},
		{0x24ea, 0x26ab, 1},
		{0x26ad, 0x26ff, 1},
		{0x2701, 0x27ca, 1},
		{0x27cc, 0x27cc, 1},
		{0x27ce, 0x27ff, 1},
		{0x2900, 0x2b4c, 1},
		{0x2b50, 0x2b59, 1},
		{0x2ce5, 0x2cea, 1},
		{0x2cf9, 0x2cff, 1},
		{0x2e00, 0x2e31, 1},
		{0x2e80, 0x2e99, 1},
		{0x2e9b, 0x2ef3, 1},
		{0x2f00, 0x2fd5, 1},
		{0x2ff0, 0x2ffb, 1},
		{0x3000, 0x3004, 1},
		{0x3008, 0x3020, 1},
		{0x3030, 0x3030, 1},
		{0x3036, 0x3037, 1},
		{0x303d, 0x303f, 1},
		{0x309b, 0x309c, 1},
		{0x30a0, 0x30a0, 1},
		{0x30fb, 0x30fb, 1},
		{0x31c0, 0x31e3, 1},
		{0x321d, 0x321e, 1},
		{0x3250, 0x325f, 1},
		{0x327c, 0x327e, 1},
		{0x32b1, 0x32bf, 1},
		{0x32cc, 0x32cf, 1},
		{0x3377, 0x337a, 1},
		{0x33de, 0x33df, 1},
		{0x33ff, 0x33ff, 1},
		{0x4dc0, 0x4dff, 1},
		{0xa490, 0xa4c6, 1},
		{0xa60d, 0xa60f, 1},
		{0xa673, 0xa673, 1},
		{0xa67e, 0xa67f, 1},
		{0xa700, 0xa721, 1},
		{0xa788, 0xa788, 1},
		{0xa828, 0xa82b, 1},
		{0xa874, 0xa877, 1},
		{0xfd3e, 0xfd3f, 1},
		{0xfdfd, 0xfdfd, 1},
		{0xfe10, 0xfe19, 1},
		{0xfe30, 0xfe4f, 1},
		{0xfe51, 0xfe51, 1},
		{0xfe54, 0xfe54, 1},
		{0xfe56, 0xfe5e, 1},
		{0xfe60, 0xfe61, 1},
		{0xfe64, 0xfe66, 1},
		{0xfe68, 0xfe68, 1},
		{0xfe6b, 0xfe6b, 1},
		{0xff01, 0xff02, 1},
		{0xff06, 0xff0a, 1},
		{0xff1b, 0xff20, 1},
		{0xff3b, 0xff40, 1},
		{0xff5b, 0xff65, 1},
		{0xffe2, 0xffe4, 1},
		{0xffe8, 0xffee, 1},
	},
	LatinOffset: 16,
}

// weakTable holds numbers, number separators, non-spacing marks and
// boundary neutrals.
var weakTable = &unicode.RangeTable{ // 227 entries
	R16: []unicode.Range16{
		{0x0000, 0x0008, 1},
		{0x000e, 0x001b, 1},
		{0x0023, 0x0025, 1},
		{0x002b, 0x003a, 1},
		{0x007f, 0x0084, 1},
		{0x0086, 0x00a0, 1},
		{0x00a2, 0x00a5, 1},
		{0x00ad, 0x00ad, 1},
		{0x00b0, 0x00b3, 1},
		{0x00b9, 0x00b9, 1},
		{0x0300, 0x036f, 1},
		{0x0483, 0x0489, 1},
		{0x0591, 0x05bd, 1},
		{0x05bf, 0x05bf, 1},
		{0x05c1, 0x05c2, 1},
		{0x05c4, 0x05c5, 1},
		{0x05c7, 0x05c7, 1},
		{0x0600, 0x0603, 1},
		{0x0609, 0x060a, 1},
		{0x060c, 0x060c, 1},
		{0x0610, 0x061a, 1},
		{0x064b, 0x066c, 1},
		{0x0670, 0x0670, 1},
		{0x06d6, 0x06dd, 1},
		{0x06df, 0x06e4, 1},
		{0x06e7, 0x06e8, 1},
		{0x06ea, 0x06ed, 1},
		{0x06f0, 0x06f9, 1},
		{0x070f, 0x070f, 1},
		{0x0711, 0x0711, 1},
		{0x0730, 0x074a, 1},
		{0x07a6, 0x07b0, 1},
		{0x07eb, 0x07f3, 1},
		{0x0816, 0x0819, 1},
		{0x081b, 0x0823, 1},
		{0x0825, 0x0827, 1},
		{0x0829, 0x082d, 1},
		{0x0859, 0x085b, 1},
		{0x0900, 0x0902, 1},
		{0x093a, 0x093a, 1},
		{0x093c, 0x093c, 1},
		{0x0941, 0x0948, 1},
		{0x094d, 0x094d, 1},
		{0x0951, 0x0957, 1},
		{0x0962, 0x0963, 1},
		{0x0981, 0x0981, 1},
		{0x09bc, 0x09bc, 1},
		{0x09c1, 0x09c4, 1},
		{0x09cd, 0x09cd, 1},
		{0x09e2, 0x09e3, 1},
		{0x09f2, 0x09f3, 1},
		{0x09fb, 0x09fb, 1},
		{0x0a01, 0x0a02, 1},
		{0x0a3c, 0x0a3c, 1},
		{0x0a41, 0x0a42, 1},
		{0x0a47, 0x0a48, 1},
		{0x0a4b, 0x0a4d, 1},
		{0x0a51, 0x0a51, 1},
		{0x0a70, 0x0a71, 1},
		{0x0a75, 0x0a75, 1},
		{0x0a81, 0x0a82, 1},
		{0x0abc, 0x0abc, 1},
		{0x0ac1, 0x0ac5, 1},
		{0x0ac7, 0x0ac8, 1},
		{0x0acd, 0x0acd, 1},
		{0x0ae2, 0x0ae3, 1},
		{0x0af1, 0x0af1, 1},
		{0x0b01, 0x0b01, 1},
		{0x0b3c, 0x0b3c, 1},
		{0x0b3f, 0x0b3f, 1},
		{0x0b41, 0x0b44, 1},
		{0x0b4d, 0x0b4d, 1},
		{0x0b56, 0x0b56, 1},
		{0x0b62, 0x0b63, 1},
		{0x0b82, 0x0b82, 1},
		{0x0bc0, 0x0bc0, 1},
		{0x0bcd, 0x0bcd, 1},
		{0x0bf9, 0x0bf9, 1},
		{0x0c3e, 0x0c40, 1},
		{0x0c46, 0x0c48, 1},
		{0x0c4a, 0x0c4d, 1},
		{0x0c55, 0x0c56, 1},
		{0x0c62, 0x0c63, 1},
		{0x0cbc, 0x0cbc, 1},
		{0x0ccc, 0x0ccd, 1},
		{0x0ce2, 0x0ce3, 1},
		{0x0d41, 0x0d44, 1},
		{0x0d4d, 0x0d4d, 1},
		{0x0d62, 0x0d63, 1},
		{0x0dca, 0x0dca, 1},
		{0x0dd2, 0x0dd4, 1},
		{0x0dd6, 0x0dd6, 1},
		{0x0e31, 0x0e31, 1},
		{0x0e34, 0x0e3a, 1},
		{0x0e3f, 0x0e3f, 1},
		{0x0e47, 0x0e4e, 1},
		{0x0eb1, 0x0eb1, 1},
		{0x0eb4, 0x0eb9, 1},
		{0x0ebb, 0x0ebc, 1},
		{0x0ec8, 0x0ecd, 1},
		{0x0f18, 0x0f19, 1},
		{0x0f35, 0x0f35, 1},
		{0x0f37, 0x0f37, 1},
		{0x0f39, 0x0f39, 1},
		{0x0f71, 0x0f7e, 1},
		{0x0f80, 0x0f84, 1},
		{0x0f86, 0x0f87, 1},
		{0x0f8d, 0x0f97, 1},
		{0x0f99, 0x0fbc, 1},
		{0x0fc6, 0x0fc6, 1},
		{0x102d, 0x1030, 1},
		{0x1032, 0x1037, 1},
		{0x1039, 0x103a, 1},
		{0x103d, 0x103e, 1},
		{0x1058, 0x1059, 1},
		{0x105e, 0x1060, 1},
		{0x1071, 0x1074, 1},
		{0x1082, 0x1082, 1},
		{0x1085, 0x1086, 1},
		{0x108d, 0x108d, 1},
		{0x109d, 0x109d, 1},
		{0x135d, 0x135f, 1},
		{0x1712, 0x1714, 1},
		{0x1732, 0x1734, 1},
		{0x1752, 0x1753, 1},
		{0x1772, 0x1773, 1},
		{0x17b7, 0x17bd, 1},
		{0x17c6, 0x17c6, 1},
		{0x17c9, 0x17d3, 1},
		{0x17db, 0x17db, 1},
		{0x17dd, 0x17dd, 1},
		{0x180b, 0x180d, 1},
		{0x18a9, 0x18a9, 1},
		{0x1920, 0x1922, 1},
		{0x1927, 0x1928, 1},
		{0x1932, 0x1932, 1},
		{0x1939, 0x193b, 1},
		{0x1a17, 0x1a18, 1},
		{0x1a56, 0x1a56, 1},
		{0x1a58, 0x1a5e, 1},
		{0x1a60, 0x1a60, 1},
		{0x1a62, 0x1a62, 1},
		{0x1a65, 0x1a6c, 1},
		{0x1a73, 0x1a7c, 1},
		{0x1a7f, 0x1a7f, 1},
		{0x1b00, 0x1b03, 1},
		{0x1b34, 0x1b34, 1},
		{0x1b36, 0x1b3a, 1},
		{0x1b3c, 0x1b3c, 1},
		{0x1b42, 0x1b42, 1},
		{0x1b6b, 0x1b73, 1},
		{0x1b80, 0x1b81, 1},
		{0x1ba2, 0x1ba5, 1},
		{0x1ba8, 0x1ba9, 1},
		{0x1be6, 0x1be6, 1},
		{0x1be8, 0x1be9, 1},
		{0x1bed, 0x1bed, 1},
		{0x1bef, 0x1bf1, 1},
		{0x1c2c, 0x1c33, 1},
		{0x1c36, 0x1c37, 1},
		{0x1cd0, 0x1cd2, 1},
		{0x1cd4, 0x1ce0, 1},
		{0x1ce2, 0x1ce8, 1},
		{0x1ced, 0x1ced, 1},
		{0x1dc0, 0x1de6, 1},
		{0x1dfc, 0x1dff, 1},
		{0x200b, 0x200d, 1},
		{0x202f, 0x2034, 1},
		{0x2044, 0x2044, 1},
		{0x2060, 0x2064, 1},
		{0x206a, 0x2070, 1},
		{0x2074, 0x207b, 1},
		{0x2080, 0x208b, 1},
		{0x20a0, 0x20b9, 1},
		{0x20d0, 0x20f0, 1},
		{0x212e, 0x212e, 1},
		{0x2212, 0x2213, 1},
		{0x2488, 0x249b, 1},
		{0x2cef, 0x2cf1, 1},
		{0x2d7f, 0x2d7f, 1},
		{0x2de0, 0x2dff, 1},
		{0x302a, 0x302f, 1},
		{0x3099, 0x309a, 1},
		{0xa66f, 0xa672, 1},
		{0xa67c, 0xa67d, 1},
		{0xa6f0, 0xa6f1, 1},
		{0xa802, 0xa802, 1},
		{0xa806, 0xa806, 1},
		{0xa80b, 0xa80b, 1},
		{0xa825, 0xa826, 1},
		{0xa838, 0xa839, 1},
		{0xa8c4, 0xa8c4, 1},
		{0xa8e0, 0xa8f1, 1},
		{0xa926, 0xa92d, 1},
		{0xa947, 0xa951, 1},
		{0xa980, 0xa982, 1},
		{0xa9b3, 0xa9b3, 1},
		{0xa9b6, 0xa9b9, 1},
		{0xa9bc, 0xa9bc, 1},
		{0xaa29, 0xaa2e, 1},
		{0xaa31, 0xaa32, 1},
		{0xaa35, 0xaa36, 1},
		{0xaa43, 0xaa43, 1},
		{0xaa4c, 0xaa4c, 1},
		{0xaab0, 0xaab0, 1},
		{0xaab2, 0xaab4, 1},
		{0xaab7, 0xaab8, 1},
		{0xaabe, 0xaabf, 1},
		{0xaac1, 0xaac1, 1},
		{0xabe5, 0xabe5, 1},
		{0xabe8, 0xabe8, 1},
		{0xabed, 0xabed, 1},
		{0xfb1e, 0xfb1e, 1},
		{0xfb29, 0xfb29, 1},
		{0xfe00, 0xfe0f, 1},
		{0xfe20, 0xfe26, 1},
		{0xfe50, 0xfe50, 1},
		{0xfe52, 0xfe52, 1},
		{0xfe55, 0xfe55, 1},
		{0xfe5f, 0xfe5f, 1},
		{0xfe62, 0xfe63, 1},
		{0xfe69, 0xfe6a, 1},
		{0xfeff, 0xfeff, 1},
		{0xff03, 0xff05, 1},
		{0xff0b, 0xff1a, 1},
		{0xffe0, 0xffe1, 1},
		{0xffe5, 0xffe6, 1},
	},
	LatinOffset: 10,
}

// mirrorPairs maps a code unit to its mirrored glyph partner.
var mirrorPairs = map[uint16]uint16{
	0x0028: 0x0029, 0x0029: 0x0028, 0x003C: 0x003E, 0x003E: 0x003C,
	0x005B: 0x005D, 0x005D: 0x005B, 0x007B: 0x007D, 0x007D: 0x007B,
	0x00AB: 0x00BB, 0x00BB: 0x00AB, 0x2215: 0x29F5, 0x221F: 0x2BFE,
	0x2220: 0x29A3, 0x2221: 0x299B, 0x2222: 0x29A0, 0x2224: 0x2AEE,
	0x2243: 0x22CD, 0x2245: 0x224C, 0x224C: 0x2245, 0x2298: 0x29B8,
	0x22A6: 0x2ADE, 0x22A8: 0x2AE4, 0x22A9: 0x2AE3, 0x22AB: 0x2AE5,
	0x22B8: 0x27DC, 0x22CD: 0x2243, 0x22F2: 0x22FA, 0x22F3: 0x22FB,
	0x22F4: 0x22FC, 0x22F6: 0x22FD, 0x22F7: 0x22FE, 0x22FA: 0x22F2,
	0x22FB: 0x22F3, 0x22FC: 0x22F4, 0x22FD: 0x22F6, 0x22FE: 0x22F7,
	0x27DC: 0x22B8, 0x299B: 0x2221, 0x29A0: 0x2222, 0x29A3: 0x2220,
	0x29B8: 0x2298, 0x29F5: 0x2215, 0x2ADE: 0x22A6, 0x2AE3: 0x22A9,
	0x2AE4: 0x22A8, 0x2AE5: 0x22AB, 0x2AEE: 0x2224, 0x2BFE: 0x221F,
}
