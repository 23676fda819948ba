//go:build !profile

package prof

import "github.com/ardnew/comi/pkg"

// Enabled reports whether profiling is compiled in.
const Enabled = false

// Session is a profiling run started by Start.
type Session struct{}

// Start logs a warning when a profile is requested, since this binary was
// built without the "profile" tag.
func Start(cpuPath, heapPath string) (*Session, error) {
	if cpuPath != "" || heapPath != "" {
		pkg.LogWarn(pkg.ComponentCLI, "profiling not compiled in; rebuild with -tags profile",
			"cpuprofile", cpuPath, "memprofile", heapPath)
	}
	return &Session{}, nil
}

// Stop does nothing.
func (*Session) Stop() error { return nil }
