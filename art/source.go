package art

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats lists the file extensions [Open] can decode.
var Formats = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

// Open reads and decodes the image at path.
// Failures to open wrap [ErrOpen]; failures to decode wrap [ErrDecode].
func Open(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Image path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			slog.Warn("close image", slog.String("path", path), slog.Any("error", closeErr))
		}
	}()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Decode decodes an image in any registered format from r.
// Unknown formats wrap both [ErrDecode] and [image.ErrFormat].
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := img.Bounds()
	slog.Debug("decoded image",
		slog.String("format", format),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()),
	)

	return img, nil
}
