package art

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleFactor is the fixed reduction applied to both dimensions by
// [Downsample].
const ScaleFactor = 10

// Downsample shrinks g to floor(Width/[ScaleFactor]) by
// floor(Height/[ScaleFactor]) pixels.
//
// Each output pixel is a triangle-weighted average of the source pixels under
// its footprint ([draw.BiLinear] widens its kernel when scaling down). When
// either output dimension is zero the result is an empty but valid [Grid].
func Downsample(g *Grid) *Grid {
	w := g.Width / ScaleFactor
	h := g.Height / ScaleFactor

	if w == 0 || h == 0 {
		return NewGrid(w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), g, g.Bounds(), draw.Src, nil)

	out := NewGrid(w, h)

	for y := range h {
		for x := range w {
			c := dst.RGBAAt(x, y)
			out.Pix[y*w+x] = RGB{R: c.R, G: c.G, B: c.B}
		}
	}

	return out
}
