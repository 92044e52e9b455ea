// Package art converts raster images into ASCII art.
//
// Conversion runs a fixed pipeline of pure functions:
//
//  1. [FromImage] flattens any decoded [image.Image] into an RGB [Grid],
//     dropping alpha.
//  2. [Downsample] shrinks the grid by [ScaleFactor] in each dimension using
//     a triangle (area-averaging) filter.
//  3. [Grayscale] reduces every pixel to floor((r+g+b)/3).
//  4. [Glyphs] maps each intensity onto the fixed [Ramp], darkest first.
//  5. [Render] writes the glyphs as text.
//
// [Convert] runs steps 1 through 4 and returns an [Art], which renders itself
// via [Art.WriteTo]:
//
//	img, err := art.Open("photo.png")
//	if err != nil {
//	    return err
//	}
//
//	a, err := art.Convert(img)
//	if err != nil {
//	    return err
//	}
//
//	_, err = a.WriteTo(os.Stdout)
//
// # Layout
//
// The renderer frames the grid with a leading and a trailing newline, and
// breaks the line after glyph i whenever i%width == 0.
// This means the first glyph always sits on a line of its own and every
// following line holds width glyphs, with the final line possibly shorter.
// A 2x2 grid of '%' renders as:
//
//	"\n%\n%%\n%\n"
//
// Existing output depends on this layout, so it is kept as is.
package art
