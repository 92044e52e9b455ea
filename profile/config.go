package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names registered by [Config.RegisterFlags].
const (
	FlagCPUProfile           = "cpu-profile"
	FlagHeapProfile          = "heap-profile"
	FlagAllocsProfile        = "allocs-profile"
	FlagGoroutineProfile     = "goroutine-profile"
	FlagThreadcreateProfile  = "threadcreate-profile"
	FlagBlockProfile         = "block-profile"
	FlagMutexProfile         = "mutex-profile"
	FlagMemProfileRate       = "mem-profile-rate"
	FlagBlockProfileRate     = "block-profile-rate"
	FlagMutexProfileFraction = "mutex-profile-fraction"
)

// Default sampling rates.
const (
	DefaultMemProfileRate       = 512 * 1024
	DefaultBlockProfileRate     = 1
	DefaultMutexProfileFraction = 1
)

// Config holds output paths and sampling rates. An empty path disables that
// profile, so a zero Config profiles nothing.
type Config struct {
	CPUProfile          string
	HeapProfile         string
	AllocsProfile       string
	GoroutineProfile    string
	ThreadcreateProfile string
	BlockProfile        string
	MutexProfile        string

	MemProfileRate       int
	BlockProfileRate     int
	MutexProfileFraction int
}

// NewConfig returns a [Config] with every profile disabled and the default
// sampling rates.
func NewConfig() *Config {
	return &Config{
		MemProfileRate:       DefaultMemProfileRate,
		BlockProfileRate:     DefaultBlockProfileRate,
		MutexProfileFraction: DefaultMutexProfileFraction,
	}
}

func (c *Config) paths() []pathFlag {
	return []pathFlag{
		{FlagCPUProfile, "CPU", &c.CPUProfile},
		{FlagHeapProfile, "heap", &c.HeapProfile},
		{FlagAllocsProfile, "allocs", &c.AllocsProfile},
		{FlagGoroutineProfile, "goroutine", &c.GoroutineProfile},
		{FlagThreadcreateProfile, "threadcreate", &c.ThreadcreateProfile},
		{FlagBlockProfile, "block", &c.BlockProfile},
		{FlagMutexProfile, "mutex", &c.MutexProfile},
	}
}

type pathFlag struct {
	name  string
	label string
	dst   *string
}

// RegisterFlags adds profiling flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	for _, p := range c.paths() {
		flags.StringVar(p.dst, p.name, *p.dst, "write "+p.label+" profile to file")
	}

	flags.IntVar(&c.MemProfileRate, FlagMemProfileRate, c.MemProfileRate,
		"memory profile rate (bytes per sample)")
	flags.IntVar(&c.BlockProfileRate, FlagBlockProfileRate, c.BlockProfileRate,
		"block profile rate (nanoseconds)")
	flags.IntVar(&c.MutexProfileFraction, FlagMutexProfileFraction, c.MutexProfileFraction,
		"mutex profile fraction (1/N sampling)")
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Rate flags complete nothing; path flags complete .prof and .pprof files.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{FlagMemProfileRate, FlagBlockProfileRate, FlagMutexProfileFraction} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	profFiles := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"prof", "pprof"}, cobra.ShellCompDirectiveFilterFileExt
	}

	for _, p := range c.paths() {
		err := cmd.RegisterFlagCompletionFunc(p.name, profFiles)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", p.name, err)
		}
	}

	return nil
}

// NewProfiler returns a [Profiler] holding a copy of c.
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}
