//go:build !linux

package serial

import (
	"context"

	"github.com/ardnew/comi/pkg"
)

// HotplugWatcher is unavailable on this platform.
type HotplugWatcher struct{}

// NewHotplugWatcher always fails with pkg.ErrNotSupported.
func NewHotplugWatcher() (*HotplugWatcher, error) {
	return nil, pkg.ErrNotSupported
}

// Events returns nil; receiving from it blocks forever.
func (h *HotplugWatcher) Events() <-chan struct{} { return nil }

// Run returns immediately.
func (h *HotplugWatcher) Run(context.Context) error { return pkg.ErrNotSupported }
