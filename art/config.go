package art

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for conversion, allowing callers to customize
// flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	File string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for conversion.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Load] to produce [Art].
type Config struct {
	File  string
	Flags Flags
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		File: "file",
	}

	return f.NewConfig()
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.File, c.Flags.File, "f", "", "path to the image to convert")
}

// RegisterCompletions limits file completion for the input flag on cmd to
// decodable image extensions.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.MarkFlagFilename(c.Flags.File, Formats...)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.File, err)
	}

	return nil
}

// Load opens and converts the configured file.
func (c *Config) Load() (*Art, error) {
	if c.File == "" {
		return nil, fmt.Errorf("%w: set --%s", ErrNoInput, c.Flags.File)
	}

	img, err := Open(c.File)
	if err != nil {
		return nil, err
	}

	return Convert(img)
}
