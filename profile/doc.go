// Package profile adds runtime profiling capabilities to CLI applications.
//
// It supports CPU, heap, allocs, goroutine, threadcreate, block, and mutex
// profiles through command-line flags. Use [Config.RegisterFlags] to add CLI
// flags and [Config.RegisterCompletions] to wire up shell completions.
//
// [Config.NewProfiler] copies the configuration, so create the [Profiler]
// once flags have been parsed:
//
//	cfg := profile.NewConfig()
//
//	var p *profile.Profiler
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        p = cfg.NewProfiler()
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
// Users can then profile a conversion with flags like
// --cpu-profile=cpu.prof.
package profile
