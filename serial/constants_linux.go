//go:build linux

package serial

// =============================================================================
// System Paths
// =============================================================================

// SysfsRoot is the mount point of sysfs.
const SysfsRoot = "/sys"

// sysfsTTYClass is the tty class directory relative to SysfsRoot.
const sysfsTTYClass = "class/tty"

// DevfsRoot is the directory holding tty device nodes.
const DevfsRoot = "/dev"

// maxParentDepth bounds the walk from a tty's device directory up to its USB
// device. usb-serial adapters sit two levels below (port, interface), CDC ACM
// one level.
const maxParentDepth = 6

// =============================================================================
// Drivers
// =============================================================================

// phantomDriver is the platform driver that registers the legacy ttyS ports
// whether or not a UART is present.
const phantomDriver = "serial8250"

// =============================================================================
// Netlink
// =============================================================================

// ueventBufferSize is the receive buffer for a single kernel uevent.
const ueventBufferSize = 8192

// ueventGroupKernel is the netlink multicast group for kernel uevents.
const ueventGroupKernel = 1

// hotplugPollTimeoutMs bounds how long a watcher blocks before re-checking
// for cancellation.
const hotplugPollTimeoutMs = 250
