package art

// Gray returns the intensity of p: the truncated mean of its channels.
func (p RGB) Gray() uint8 {
	return uint8((uint16(p.R) + uint16(p.G) + uint16(p.B)) / 3)
}

// Grayscale reduces g to one intensity per pixel, rows first, so the result
// has the same row-major layout as g.Pix.
func Grayscale(g *Grid) []uint8 {
	out := make([]uint8, 0, g.Width*g.Height)

	for y := range g.Height {
		for x := range g.Width {
			out = append(out, g.Pix[y*g.Width+x].Gray())
		}
	}

	return out
}
