// Package pkg provides shared utilities for the comi serial port lister.
//
// This package contains common functionality used by the enumeration,
// settings, alias resolution, and monitoring packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for the failure kinds the tool degrades on
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with a component attribute:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentSettings, "using settings file", "path", path)
//
// # Errors
//
// Failure kinds are defined as sentinel values and wrapped with context:
//
//	if errors.Is(err, pkg.ErrConfigValidation) {
//	    // Report the conflict and keep going with the unvalidated settings
//	}
package pkg
