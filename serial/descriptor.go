package serial

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Descriptor is one attached serial port as seen by the OS at a point in time.
//
// String fields hold the empty string when the OS did not report a value.
type Descriptor struct {
	PortName     string // OS device name, e.g. /dev/ttyUSB0 or COM3
	USB          bool   // Port is backed by a USB device
	VendorID     uint16 // USB Vendor ID
	ProductID    uint16 // USB Product ID
	SerialNumber string // iSerialNumber string
	Manufacturer string // iManufacturer string
	ProductName  string // iProduct string
}

// String returns a short single-line description of the port.
func (d Descriptor) String() string {
	if !d.USB {
		return d.PortName
	}
	return fmt.Sprintf("%s [%04x:%04x %s]", d.PortName, d.VendorID, d.ProductID, d.SerialNumber)
}

// trimPortSuffix removes a trailing " (<port>)" decoration some platforms
// append to the product string, e.g. "USB Serial Device (COM3)".
func trimPortSuffix(product, portName string) string {
	product = strings.TrimSpace(product)
	if !strings.HasSuffix(product, ")") {
		return product
	}
	idx := strings.LastIndex(product, " (")
	if idx < 0 {
		return product
	}
	inner := product[idx+2 : len(product)-1]
	if inner != portName && inner != filepath.Base(portName) {
		return product
	}
	return strings.TrimSpace(product[:idx])
}
