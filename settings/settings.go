// Package settings loads optional YAML defaults for the asciiart command.
//
// A settings file supplies values for flags the user did not pass:
//
//	log-level: debug
//	log-format: json
//	preview: true
//
// Explicit command-line flags always win over the file. [Schema] describes
// the file format as JSON Schema for editor integration.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/asciiart/log"
)

// Sentinel errors returned by this package.
var (
	ErrReadConfig    = errors.New("read config")
	ErrInvalidConfig = errors.New("invalid config")
)

// File is the on-disk settings format.
type File struct {
	LogLevel  string `json:"log-level,omitempty" jsonschema:"log level used when --log-level is not set" yaml:"log-level"`
	LogFormat string `json:"log-format,omitempty" jsonschema:"log format used when --log-format is not set" yaml:"log-format"`
	Preview   bool   `json:"preview,omitempty" jsonschema:"open the full-screen viewer when --preview is not set" yaml:"preview"`
}

// Load reads and validates the settings file at path.
// Unknown keys and unknown level or format names wrap [ErrInvalidConfig].
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return Parse(data)
}

// Parse decodes and validates settings from YAML.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if f.LogLevel != "" {
		_, err = log.ParseLevel(f.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: log-level: %w", ErrInvalidConfig, err)
		}
	}

	if f.LogFormat != "" {
		_, err = log.ParseFormat(f.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: log-format: %w", ErrInvalidConfig, err)
		}
	}

	return &f, nil
}

// Apply sets each non-empty value in f on the flag of the same name, unless
// that flag was given on the command line or is not registered.
func (f *File) Apply(flags *pflag.FlagSet) error {
	values := map[string]string{
		"log-level":  f.LogLevel,
		"log-format": f.LogFormat,
	}

	if f.Preview {
		values["preview"] = strconv.FormatBool(f.Preview)
	}

	for name, value := range values {
		if value == "" {
			continue
		}

		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}

		err := flag.Value.Set(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

// Schema returns a JSON Schema describing [File].
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("infer settings schema: %w", err)
	}

	s.Title = "asciiart settings"

	if p, ok := s.Properties["log-level"]; ok {
		p.Enum = toAny(log.GetAllLevelStrings())
	}

	if p, ok := s.Properties["log-format"]; ok {
		p.Enum = toAny(log.GetAllFormatStrings())
	}

	return s, nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
