// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats: [FormatText] (rendered by
// [charm.land/log/v2]), [FormatJSON] and [FormatLogfmt]. Levels are
// [LevelError], [LevelWarn], [LevelInfo] and [LevelDebug]. Use [NewHandler]
// to create a handler directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Handlers should write to stderr so that rendered art on stdout stays clean:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
