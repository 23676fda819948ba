//go:build profile

package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/ardnew/comi/pkg"
)

// ErrActive indicates a CPU profile is already being collected.
var ErrActive = errors.New("cpu profile already active")

// Enabled reports whether profiling is compiled in.
const Enabled = true

// Session is a profiling run started by Start.
type Session struct {
	cpu      *os.File
	heapPath string
}

// Start begins collecting a CPU profile into cpuPath and arranges for a heap
// profile to be written to heapPath when the session stops. Empty paths
// disable the corresponding profile.
func Start(cpuPath, heapPath string) (*Session, error) {
	s := &Session{heapPath: heapPath}
	if cpuPath == "" {
		return s, nil
	}

	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		os.Remove(cpuPath)
		return nil, fmt.Errorf("%w: %w", ErrActive, err)
	}
	s.cpu = f
	pkg.LogDebug(pkg.ComponentCLI, "cpu profile started", "path", cpuPath)
	return s, nil
}

// Stop finishes the CPU profile and writes the heap profile. It is safe to
// call more than once.
func (s *Session) Stop() error {
	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.heapPath != "" {
		errs = append(errs, writeHeap(s.heapPath))
		s.heapPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.Lookup("heap").WriteTo(f, 0); err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	pkg.LogDebug(pkg.ComponentCLI, "heap profile written", "path", path)
	return nil
}
