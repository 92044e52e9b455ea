package art

import (
	"image"
	"image/color"
)

// RGB is a single opaque pixel with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Grid is a rectangular, row-major array of [RGB] pixels with its origin at
// the top-left corner. len(Pix) is always Width*Height.
//
// Grid implements [image.Image] so it can be handed to resamplers directly.
type Grid struct {
	Pix    []RGB
	Width  int
	Height int
}

// NewGrid returns a black Grid of the given size.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)

	return &Grid{
		Pix:    make([]RGB, width*height),
		Width:  width,
		Height: height,
	}
}

// FromImage flattens img into a [Grid].
//
// Every color model is converted through [color.NRGBAModel] and the alpha
// channel is discarded, so gray, paletted, YCbCr, CMYK and translucent images
// all yield their straight RGB channels. The result is re-origined at (0, 0).
func FromImage(img image.Image) *Grid {
	if g, ok := img.(*Grid); ok {
		return g
	}

	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	for y := range g.Height {
		for x := range g.Width {
			c, ok := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if !ok {
				continue
			}

			g.Pix[y*g.Width+x] = RGB{R: c.R, G: c.G, B: c.B}
		}
	}

	return g
}

// Empty reports whether the grid holds no pixels.
func (g *Grid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// RGBAt returns the pixel at (x, y), or black when out of bounds.
func (g *Grid) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return RGB{}
	}

	return g.Pix[y*g.Width+x]
}

// Set stores p at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, p RGB) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}

	g.Pix[y*g.Width+x] = p
}

// ColorModel implements [image.Image].
func (g *Grid) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements [image.Image].
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// At implements [image.Image].
func (g *Grid) At(x, y int) color.Color {
	p := g.RGBAt(x, y)

	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}
