package shaping

// SwapShape swaps every code unit for which swaps is true with its
// predecessor, scanning input from left to right. It works in place.
func SwapShape(input []uint16, swaps func(uint16) bool) {
	for i := 1; i < len(input); i++ {
		if swaps(input[i]) {
			input[i-1], input[i] = input[i], input[i-1]
		}
	}
}

// IsTamilVowelSign is true for the Tamil vowel signs 0BBE–0BC8.
func IsTamilVowelSign(u uint16) bool {
	return u >= 0x0BBE && u <= 0x0BC8
}

// ShapeTamil moves Tamil vowel signs in front of the letter they follow.
func ShapeTamil(input []uint16) {
	SwapShape(input, IsTamilVowelSign)
}
