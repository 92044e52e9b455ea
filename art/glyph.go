package art

// Ramp lists the glyphs used for output, from darkest to brightest.
const Ramp = ":;|%$#@"

// GlyphFor maps an intensity to its glyph.
//
//	0        ':'
//	1-50     ';'
//	51-100   '|'
//	101-151  '%'
//	152-202  '$'
//	203-252  '#'
//	253-255  '@'
func GlyphFor(p uint8) rune {
	switch {
	case p >= 253:
		return '@'
	case p >= 203:
		return '#'
	case p >= 152:
		return '$'
	case p >= 101:
		return '%'
	case p >= 51:
		return '|'
	case p >= 1:
		return ';'
	}

	return ':'
}

// Glyphs maps every intensity in ps to its glyph, preserving order.
func Glyphs(ps []uint8) []rune {
	out := make([]rune, len(ps))
	for i, p := range ps {
		out[i] = GlyphFor(p)
	}

	return out
}
