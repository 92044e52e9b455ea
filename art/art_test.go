package art_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"go.jacobcolvin.com/asciiart/art"
	"go.jacobcolvin.com/asciiart/stringtest"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	return img
}

func uniformNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.png")

	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return path
}

func TestConvertMidGray(t *testing.T) {
	t.Parallel()

	a, err := art.Convert(uniformImage(20, 20, color.RGBA{R: 128, G: 128, B: 128, A: 0xff}))
	require.NoError(t, err)

	assert.Equal(t, 2, a.Width)
	assert.Equal(t, 2, a.Height())
	assert.Equal(t, "%%%%", string(a.Glyphs))
	assert.Equal(t, stringtest.JoinLF("", "%", "%%", "%", ""), a.String())
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		img     image.Image
		want    string
		wantW   int
		wantErr error
	}{
		"black": {
			img:   uniformImage(30, 10, color.Black),
			want:  ":::",
			wantW: 3,
		},
		"white": {
			img:   uniformImage(10, 30, color.White),
			want:  "@@@",
			wantW: 1,
		},
		"gray model": {
			img:   image.NewGray(image.Rect(0, 0, 20, 10)),
			want:  "::",
			wantW: 2,
		},
		"transparent pixels keep their color": {
			img:   uniformNRGBA(10, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 0}),
			want:  "@",
			wantW: 1,
		},
		"zero nrgba is black": {
			img:   image.NewNRGBA(image.Rect(0, 0, 10, 10)),
			want:  ":",
			wantW: 1,
		},
		"too narrow": {
			img:     uniformImage(9, 100, color.White),
			wantErr: art.ErrEmptyImage,
		},
		"too short": {
			img:     uniformImage(100, 9, color.White),
			wantErr: art.ErrEmptyImage,
		},
		"empty": {
			img:     image.NewRGBA(image.Rectangle{}),
			wantErr: art.ErrEmptyImage,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := art.Convert(tc.img)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, a)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantW, a.Width)
			assert.Equal(t, tc.want, string(a.Glyphs))
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("png", func(t *testing.T) {
		t.Parallel()

		path := writePNG(t, uniformImage(40, 20, color.White))

		img, err := art.Open(path)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := art.Open(filepath.Join(t.TempDir(), "nope.png"))
		require.ErrorIs(t, err, art.ErrOpen)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello, world"), 0o600))

		_, err := art.Open(path)
		require.ErrorIs(t, err, art.ErrDecode)
		require.ErrorIs(t, err, image.ErrFormat)
		assert.ErrorContains(t, err, path)
	})

	t.Run("truncated png", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, uniformImage(20, 20, color.White)))

		path := filepath.Join(t.TempDir(), "cut.png")
		require.NoError(t, os.WriteFile(path, buf.Bytes()[:buf.Len()/2], 0o600))

		_, err := art.Open(path)
		require.ErrorIs(t, err, art.ErrDecode)
	})
}

func TestDecodeBMP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, uniformImage(20, 10, color.RGBA{R: 128, G: 128, B: 128, A: 0xff})))

	img, err := art.Decode(&buf)
	require.NoError(t, err)

	a, err := art.Convert(img)
	require.NoError(t, err)
	assert.Equal(t, "%%", string(a.Glyphs))
}

func TestConfig(t *testing.T) {
	t.Parallel()

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		cfg := art.NewConfig()
		cmd := &cobra.Command{Use: "test"}
		cfg.RegisterFlags(cmd.Flags())
		require.NoError(t, cfg.RegisterCompletions(cmd))

		require.NoError(t, cmd.Flags().Parse([]string{"-f", "cat.png"}))
		assert.Equal(t, "cat.png", cfg.File)

		flag := cmd.Flags().Lookup("file")
		require.NotNil(t, flag)
		assert.Equal(t, art.Formats, flag.Annotations[cobra.BashCompFilenameExt])
	})

	t.Run("load", func(t *testing.T) {
		t.Parallel()

		cfg := art.NewConfig()
		cfg.File = writePNG(t, uniformImage(20, 20, color.RGBA{R: 128, G: 128, B: 128, A: 0xff}))

		a, err := cfg.Load()
		require.NoError(t, err)
		assert.Equal(t, "%%%%", string(a.Glyphs))
	})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()

		_, err := art.NewConfig().Load()
		require.ErrorIs(t, err, art.ErrNoInput)
	})
}
