package art

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors returned by this package.
var (
	// ErrNoInput indicates no input file was given.
	ErrNoInput = errors.New("no input file")
	// ErrOpen indicates the input file could not be opened.
	ErrOpen = errors.New("open image")
	// ErrDecode indicates the input could not be decoded as an image.
	ErrDecode = errors.New("decode image")
	// ErrEmptyImage indicates the downsampled image has no pixels.
	ErrEmptyImage = errors.New("empty image")
	// ErrWriteOutput indicates the rendered text could not be written.
	ErrWriteOutput = errors.New("write output")
)

// Art is a glyph grid ready to be rendered.
// Width travels with Glyphs so rows can be reconstructed.
type Art struct {
	Glyphs []rune
	Width  int
}

// Convert turns img into [Art].
//
// It returns [ErrEmptyImage] if either downsampled dimension is zero, i.e.
// the source is narrower or shorter than [ScaleFactor] pixels.
func Convert(img image.Image) (*Art, error) {
	src := FromImage(img)
	small := Downsample(src)

	slog.Debug("downsampled image",
		slog.Int("src_width", src.Width),
		slog.Int("src_height", src.Height),
		slog.Int("width", small.Width),
		slog.Int("height", small.Height),
	)

	if small.Empty() {
		return nil, fmt.Errorf("%w: %dx%d source downsamples to %dx%d",
			ErrEmptyImage, src.Width, src.Height, small.Width, small.Height)
	}

	return &Art{
		Glyphs: Glyphs(Grayscale(small)),
		Width:  small.Width,
	}, nil
}

// Height returns the number of glyph rows.
func (a *Art) Height() int {
	if a.Width == 0 {
		return 0
	}

	return len(a.Glyphs) / a.Width
}

// WriteTo renders a to w. It implements [io.WriterTo].
func (a *Art) WriteTo(w io.Writer) (int64, error) {
	return Render(w, a.Glyphs, a.Width)
}

// String returns the rendered text, or "" if a has no width.
func (a *Art) String() string {
	var sb strings.Builder

	_, err := a.WriteTo(&sb)
	if err != nil {
		return ""
	}

	return sb.String()
}
