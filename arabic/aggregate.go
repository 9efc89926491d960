package arabic

// aggregateTashkeel replaces pairs of Shadda and a vowel mark by a single
// precomposed presentation form (FC5E–FC62). Pairs are only combined with
// letter mode ShapeTashkeelIsolated; in every other mode the result is a
// plain copy of source. Visual text is scanned from its end.
func aggregateTashkeel(source []uint16, cfg Config) []uint16 {
	combine := cfg.Letters == ShapeTashkeelIsolated
	out := make([]uint16, 0, len(source))
	var prev, currLink uint16
	possible := true
	n := len(source)
	for k := 0; k < n; k++ {
		i := k
		if cfg.VisualLTR {
			i = n - 1 - k
		}
		prevLink := currLink
		currLink = Link(source[i])
		if combine && possible && (prevLink|currLink)&Combine == Combine {
			possible = false // at most two marks per combination
			composed := min(prev, source[i]) - 0x064C + 0xFC5E
			out[len(out)-1] = composed
			currLink = Link(composed)
			tracer().Debugf("arabic: aggregated tashkeel to %#04x", composed)
			continue
		}
		possible = true
		out = append(out, source[i])
		prev = source[i]
	}
	if cfg.VisualLTR {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
