package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of runtime profiling sessions.
//
// Call [Profiler.Start] to begin profiling and [Profiler.Stop] to write all
// enabled profiles.
//
// Create instances with [Config.NewProfiler] after flags have been parsed;
// the Profiler keeps a copy of the [Config].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start configures runtime profiling rates and starts CPU profiling if enabled.
// Call [Profiler.Stop] when profiling is complete to write snapshot profiles.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate
	runtime.SetBlockProfileRate(p.BlockProfileRate)
	runtime.SetMutexProfileFraction(p.MutexProfileFraction)

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("starting CPU profile: %w", err), f.Close())
	}

	p.cpuFile = f

	slog.Debug("started CPU profile", slog.String("path", p.CPUProfile))

	return nil
}

// Stop stops CPU profiling and writes all enabled snapshot profiles.
// Calling Stop more than once only rewrites the snapshots.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		p.cpuFile = nil

		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	return p.writeSnapshots()
}

func (p *Profiler) writeSnapshots() error {
	profiles := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
		{"goroutine", p.GoroutineProfile},
		{"threadcreate", p.ThreadcreateProfile},
		{"block", p.BlockProfile},
		{"mutex", p.MutexProfile},
	}

	for _, prof := range profiles {
		if prof.path == "" {
			continue
		}

		err := writeProfile(prof.name, prof.path)
		if err != nil {
			return fmt.Errorf("write %s profile: %w", prof.name, err)
		}

		slog.Debug("wrote profile", slog.String("name", prof.name), slog.String("path", prof.path))
	}

	return nil
}

func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(err, f.Close())
	}

	return f.Close()
}
