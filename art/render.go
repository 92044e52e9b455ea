package art

import (
	"fmt"
	"io"
	"strings"
)

// Render writes glyphs to w as text, width glyphs per row.
//
// Output starts with a newline, breaks the line after glyph i whenever
// i%width == 0, and ends with a newline (see the package docs for the
// resulting layout). A width of zero or less returns [ErrEmptyImage] and
// writes nothing.
func Render(w io.Writer, glyphs []rune, width int) (int64, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: render width %d", ErrEmptyImage, width)
	}

	var sb strings.Builder

	sb.Grow(len(glyphs) + len(glyphs)/width + 3)
	sb.WriteByte('\n')

	for i, g := range glyphs {
		sb.WriteRune(g)

		if i%width == 0 {
			sb.WriteByte('\n')
		}
	}

	sb.WriteByte('\n')

	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return int64(n), nil
}
