package arabic

// deshape maps presentation forms in dest back to the Arabic block. With
// LamAlef mode Resize, Lam-Alef ligatures expand to Alef and Lam (dest is
// in visual order, Lam ends up on the right); otherwise they are kept.
func deshape(dest []uint16, cfg Config) []uint16 {
	out := make([]uint16, 0, OutputSize(dest, cfg))
	for _, ch := range dest {
		switch {
		case isLamAlef(ch):
			if cfg.LamAlef == LamAlefResize {
				out = append(out, convertLamAlef[ch-0xFEF5], lamChar)
			} else {
				out = append(out, ch)
			}
		case ch >= 0xFB50 && ch <= 0xFBFF:
			if c := convertFBto06[ch-0xFB50]; c != 0 {
				ch = c
			}
			out = append(out, ch)
		case ch >= 0xFE70 && ch <= 0xFEFC:
			out = append(out, convertFEto06[ch-0xFE70])
		default:
			out = append(out, ch)
		}
	}
	return out
}
