//go:build linux

package serial

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/ardnew/comi/pkg"
)

// =============================================================================
// UEvent Types
// =============================================================================

// ueventAction represents a udev action.
type ueventAction uint8

const (
	ueventUnknown ueventAction = iota
	ueventAdd
	ueventRemove
	ueventChange
	ueventBind
	ueventUnbind
)

// String returns the uevent ACTION spelling.
func (a ueventAction) String() string {
	switch a {
	case ueventAdd:
		return "add"
	case ueventRemove:
		return "remove"
	case ueventChange:
		return "change"
	case ueventBind:
		return "bind"
	case ueventUnbind:
		return "unbind"
	default:
		return "unknown"
	}
}

// uevent represents a parsed netlink uevent.
type uevent struct {
	action    ueventAction
	devpath   string // DEVPATH value
	subsystem string // SUBSYSTEM value
	devname   string // DEVNAME value
}

// changesPorts reports whether the event adds or removes a tty device.
func (e uevent) changesPorts() bool {
	if e.subsystem != "tty" {
		return false
	}
	return e.action == ueventAdd || e.action == ueventRemove
}

// =============================================================================
// Hotplug Watcher
// =============================================================================

// HotplugWatcher signals when a tty device is added to or removed from the
// host.
type HotplugWatcher struct {
	fd     int
	buf    [ueventBufferSize]byte
	notify chan struct{}
}

// NewHotplugWatcher opens a kernel uevent netlink socket.
func NewHotplugWatcher() (*HotplugWatcher, error) {
	fd, err := unix.Socket(
		unix.AF_NETLINK,
		unix.SOCK_DGRAM|unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK,
		unix.NETLINK_KOBJECT_UEVENT,
	)
	if err != nil {
		return nil, fmt.Errorf("hotplug socket: %w", err)
	}

	addr := &unix.SockaddrNetlink{
		Family: unix.AF_NETLINK,
		Groups: ueventGroupKernel,
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("hotplug bind: %w", err)
	}

	return &HotplugWatcher{
		fd:     fd,
		notify: make(chan struct{}, 1),
	}, nil
}

// Events returns the notification channel. Bursts of uevents coalesce into a
// single pending notification.
func (h *HotplugWatcher) Events() <-chan struct{} {
	return h.notify
}

// Run reads uevents until ctx is cancelled or the socket fails, then closes
// the socket.
func (h *HotplugWatcher) Run(ctx context.Context) error {
	defer unix.Close(h.fd)

	fds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := unix.Poll(fds, hotplugPollTimeoutMs)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("hotplug poll: %w", err)
		}
		if n == 0 {
			continue
		}

		if err := h.drain(); err != nil {
			return err
		}
	}
}

// drain processes every uevent currently queued on the socket.
func (h *HotplugWatcher) drain() error {
	for {
		n, err := unix.Read(h.fd, h.buf[:])
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return nil
			}
			return fmt.Errorf("hotplug read: %w", err)
		}
		if n <= 0 {
			return nil
		}

		evt := parseUEvent(h.buf[:n])
		if !evt.changesPorts() {
			continue
		}

		pkg.LogDebug(pkg.ComponentHotplug, "tty uevent",
			"action", evt.action.String(), "devpath", evt.devpath, "devname", evt.devname)

		select {
		case h.notify <- struct{}{}:
		default:
		}
	}
}

// =============================================================================
// UEvent Parsing
// =============================================================================

// ueventHeaders maps the "action@devpath" header prefixes to actions.
var ueventHeaders = []struct {
	prefix string
	action ueventAction
}{
	{"add@", ueventAdd},
	{"remove@", ueventRemove},
	{"change@", ueventChange},
	{"bind@", ueventBind},
	{"unbind@", ueventUnbind},
}

// parseAction converts an ACTION value.
func parseAction(value string) ueventAction {
	switch value {
	case "add":
		return ueventAdd
	case "remove":
		return ueventRemove
	case "change":
		return ueventChange
	case "bind":
		return ueventBind
	case "unbind":
		return ueventUnbind
	default:
		return ueventUnknown
	}
}

// parseUEvent parses a netlink uevent message.
func parseUEvent(data []byte) uevent {
	evt := uevent{}

	for _, line := range bytes.Split(data, []byte{0}) {
		if len(line) == 0 {
			continue
		}
		s := string(line)

		key, value, ok := strings.Cut(s, "=")
		if !ok {
			// The header line is "action@devpath".
			for _, h := range ueventHeaders {
				if strings.HasPrefix(s, h.prefix) {
					evt.action = h.action
					evt.devpath = s[len(h.prefix):]
					break
				}
			}
			continue
		}

		switch key {
		case "ACTION":
			evt.action = parseAction(value)
		case "DEVPATH":
			evt.devpath = value
		case "SUBSYSTEM":
			evt.subsystem = value
		case "DEVNAME":
			evt.devname = value
		}
	}

	return evt
}
