//go:build linux

package serial

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ardnew/comi/pkg"
)

// =============================================================================
// Sysfs Enumerator
// =============================================================================

// SysfsEnumerator lists serial ports by reading sysfs.
type SysfsEnumerator struct {
	root string // sysfs mount point
	dev  string // device node directory
}

// NewSysfsEnumerator returns an enumerator reading the live sysfs tree.
func NewSysfsEnumerator() *SysfsEnumerator {
	return NewSysfsEnumeratorAt(SysfsRoot, DevfsRoot)
}

// NewSysfsEnumeratorAt returns an enumerator reading a sysfs tree mounted at
// root and naming ports under dev.
func NewSysfsEnumeratorAt(root, dev string) *SysfsEnumerator {
	return &SysfsEnumerator{root: root, dev: dev}
}

// Ports implements Enumerator.
func (e *SysfsEnumerator) Ports() ([]Descriptor, error) {
	classDir := filepath.Join(e.root, sysfsTTYClass)
	entries, err := os.ReadDir(classDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrEnumeration, err)
	}

	var ports []Descriptor
	for _, entry := range entries {
		name := entry.Name()

		// Virtual terminals and ptys have no parent device.
		deviceDir, err := filepath.EvalSymlinks(filepath.Join(classDir, name, "device"))
		if err != nil {
			continue
		}
		if driverName(deviceDir) == phantomDriver {
			continue
		}

		desc := Descriptor{PortName: filepath.Join(e.dev, name)}
		if usbDir, ok := e.findUSBDevice(deviceDir); ok {
			e.readUSBDevice(usbDir, &desc)
		}
		ports = append(ports, desc)
	}

	pkg.LogDebug(pkg.ComponentEnumerator, "listed ports", "backend", "sysfs", "count", len(ports))
	return ports, nil
}

// findUSBDevice walks up from a tty's device directory to the nearest
// ancestor describing a USB device.
func (e *SysfsEnumerator) findUSBDevice(dir string) (string, bool) {
	for range maxParentDepth {
		if isUSBDevice(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir || len(parent) < len(e.root) {
			break
		}
		dir = parent
	}
	return "", false
}

// readUSBDevice fills the USB fields of desc from a USB device directory.
func (e *SysfsEnumerator) readUSBDevice(dir string, desc *Descriptor) {
	desc.USB = true

	if vid, err := readSysfsHexUint16(filepath.Join(dir, "idVendor")); err == nil {
		desc.VendorID = vid
	}
	if pid, err := readSysfsHexUint16(filepath.Join(dir, "idProduct")); err == nil {
		desc.ProductID = pid
	}

	// String descriptors are optional; a missing file means the device
	// does not report the string.
	desc.SerialNumber, _ = readSysfsString(filepath.Join(dir, "serial"))
	desc.Manufacturer, _ = readSysfsString(filepath.Join(dir, "manufacturer"))
	product, _ := readSysfsString(filepath.Join(dir, "product"))
	desc.ProductName = trimPortSuffix(product, desc.PortName)
}

// isUSBDevice reports whether dir is a USB device (not interface) directory.
func isUSBDevice(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, "idVendor")); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, "idProduct"))
	return err == nil
}

// driverName returns the name of the driver bound to a device directory, or
// the empty string when none is bound.
func driverName(dir string) string {
	target, err := os.Readlink(filepath.Join(dir, "driver"))
	if err != nil {
		return ""
	}
	return filepath.Base(target)
}

// =============================================================================
// Sysfs Read Helpers
// =============================================================================

// readSysfsString reads a string from a sysfs attribute file.
func readSysfsString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readSysfsHexUint16 reads a hexadecimal uint16 from a sysfs attribute file.
func readSysfsHexUint16(path string) (uint16, error) {
	s, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
