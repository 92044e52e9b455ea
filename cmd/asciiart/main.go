// Command asciiart renders an image as ASCII art on stdout.
//
// The image is shrunk tenfold in each dimension with a triangle filter,
// reduced to grayscale, and each pixel is printed as one of seven glyphs
// ordered from darkest to brightest:
//
//	: ; | % $ # @
//
// # Usage
//
//	asciiart -f <image> [flags]
//	asciiart schema
//
// # Flags
//
//	-f, --file PATH     image to convert (png, jpeg, gif, bmp, tiff, webp)
//	    --preview       show the result in a full-screen viewer
//	    --config PATH   YAML file with defaults for the flags below
//	    --log-level     one of error, warn, info, debug (default info)
//	    --log-format    one of text, json, logfmt (default text)
//
// Profiling flags such as --cpu-profile are also available.
// Logs are written to stderr; stdout carries only the rendered art.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiart/art"
	"go.jacobcolvin.com/asciiart/log"
	"go.jacobcolvin.com/asciiart/profile"
	"go.jacobcolvin.com/asciiart/settings"
	"go.jacobcolvin.com/asciiart/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newApp().execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by the root command's hooks.
type app struct {
	art      *art.Config
	log      *log.Config
	profile  *profile.Config
	profiler *profile.Profiler
	config   string
	preview  bool
}

func newApp() *app {
	return &app{
		art:     art.NewConfig(),
		log:     log.NewConfig(),
		profile: profile.NewConfig(),
	}
}

// execute runs the command line in args, then stops any profiler that was
// started.
func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := a.command(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	if a.profiler != nil {
		stopErr := a.profiler.Stop()
		if stopErr != nil {
			err = errors.Join(err, fmt.Errorf("stop profiler: %w", stopErr))
		}
	}

	return err
}

func (a *app) command(stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asciiart -f <image>",
		Short: "Render an image as ASCII art",
		Long: `asciiart renders an image as ASCII art. The image is shrunk tenfold with a
triangle filter, converted to grayscale, and every pixel is printed as one of
the glyphs ": ; | % $ # @", darkest first.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, stderr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config, "config", "", "YAML file with default flag values")
	a.log.RegisterFlags(flags)
	a.profile.RegisterFlags(flags)

	a.art.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&a.preview, "preview", false, "show the result in a full-screen viewer")

	for _, register := range []func(*cobra.Command) error{
		a.art.RegisterCompletions,
		a.log.RegisterCompletions,
		a.profile.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

// setup applies the settings file, installs the default logger, and starts
// profiling.
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	if a.config != "" {
		f, err := settings.Load(a.config)
		if err != nil {
			return err
		}

		err = f.Apply(cmd.Flags())
		if err != nil {
			return err
		}
	}

	handler, err := a.log.NewHandler(stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	a.profiler = a.profile.NewProfiler()

	return a.profiler.Start()
}

func (a *app) run(ctx context.Context, stdout io.Writer) error {
	result, err := a.art.Load()
	if err != nil {
		return err
	}

	slog.Debug("converted image",
		slog.String("file", a.art.File),
		slog.Int("width", result.Width),
		slog.Int("height", result.Height()),
	)

	if a.preview {
		return runPreview(ctx, result)
	}

	warnIfWide(result, stdout)

	_, err = result.WriteTo(stdout)

	return err
}
