// Package serial discovers the serial ports currently attached to the host.
//
// Each call to an [Enumerator] returns a fresh snapshot of [Descriptor]
// values: the OS device name of the port plus the identifying fields the USB
// device reports about itself (product ID, serial number, manufacturer and
// product strings). Descriptors are values; nothing in this module mutates
// one after it has been returned.
//
// # Backends
//
// On Linux the default enumerator reads sysfs directly:
//
//   - /sys/class/tty/<name>/device locates the port's parent device
//   - the nearest ancestor carrying idVendor/idProduct is the USB device
//   - serial, manufacturer and product attribute files supply the strings
//
// On every other platform the default enumerator delegates to
// go.bug.st/serial/enumerator, which wraps the native OS APIs (SetupAPI on
// Windows, IOKit on macOS).
//
// # Hotplug
//
// On Linux a [HotplugWatcher] listens on the kernel uevent netlink socket and
// signals whenever a tty device is added or removed. Consumers use the signal
// to poll immediately rather than waiting for their next interval.
package serial
