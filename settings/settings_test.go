package settings_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiart/log"
	"go.jacobcolvin.com/asciiart/settings"
	"go.jacobcolvin.com/asciiart/stringtest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want    *settings.File
		wantErr error
		input   string
	}{
		"all keys": {
			input: stringtest.Input(`
				log-level: debug
				log-format: json
				preview: true
			`),
			want: &settings.File{LogLevel: "debug", LogFormat: "json", Preview: true},
		},
		"partial": {
			input: "log-format: logfmt\n",
			want:  &settings.File{LogFormat: "logfmt"},
		},
		"empty": {
			input: "",
			want:  &settings.File{},
		},
		"unknown key": {
			input:   "scale: 5\n",
			wantErr: settings.ErrInvalidConfig,
		},
		"bad level": {
			input:   "log-level: loud\n",
			wantErr: log.ErrUnknownLogLevel,
		},
		"bad format": {
			input:   "log-format: xml\n",
			wantErr: log.ErrUnknownLogFormat,
		},
		"not yaml": {
			input:   "log-level: [\n",
			wantErr: settings.ErrInvalidConfig,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := settings.Parse([]byte(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, settings.ErrInvalidConfig)
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "asciiart.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o600))

		got, err := settings.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", got.LogLevel)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := settings.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, settings.ErrReadConfig)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	newFlags := func() (*pflag.FlagSet, *log.Config, *bool) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

		cfg := log.NewConfig()
		cfg.RegisterFlags(flags)

		preview := flags.Bool("preview", false, "")

		return flags, cfg, preview
	}

	t.Run("fills unset flags", func(t *testing.T) {
		t.Parallel()

		flags, cfg, preview := newFlags()
		require.NoError(t, flags.Parse(nil))

		f := &settings.File{LogLevel: "debug", LogFormat: "json", Preview: true}
		require.NoError(t, f.Apply(flags))

		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.True(t, *preview)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()

		flags, cfg, _ := newFlags()
		require.NoError(t, flags.Parse([]string{"--log-level=error"}))

		f := &settings.File{LogLevel: "debug"}
		require.NoError(t, f.Apply(flags))

		assert.Equal(t, "error", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("unregistered flags ignored", func(t *testing.T) {
		t.Parallel()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

		f := &settings.File{LogLevel: "debug", Preview: true}
		require.NoError(t, f.Apply(flags))
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s, err := settings.Schema()
	require.NoError(t, err)

	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "asciiart settings", s.Title)
	require.Contains(t, s.Properties, "log-level")
	require.Contains(t, s.Properties, "log-format")
	require.Contains(t, s.Properties, "preview")
	assert.Empty(t, s.Required)

	assert.Equal(t, "string", s.Properties["log-level"].Type)
	assert.Equal(t, []any{"error", "warn", "info", "debug"}, s.Properties["log-level"].Enum)
	assert.Equal(t, []any{"text", "json", "logfmt"}, s.Properties["log-format"].Enum)
	assert.Equal(t, "boolean", s.Properties["preview"].Type)
	assert.NotEmpty(t, s.Properties["preview"].Description)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"log-level"`)
}
