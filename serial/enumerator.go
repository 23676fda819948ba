package serial

//go:generate mockgen -destination=mock_serial.go -package=serial github.com/ardnew/comi/serial Enumerator

// Enumerator lists the serial ports currently attached to the host.
type Enumerator interface {
	// Ports returns a snapshot of every attached serial port. Errors wrap
	// pkg.ErrEnumeration.
	Ports() ([]Descriptor, error)
}

// USBOnly returns the USB-backed descriptors of ports, preserving order.
func USBOnly(ports []Descriptor) []Descriptor {
	usb := make([]Descriptor, 0, len(ports))
	for _, p := range ports {
		if p.USB {
			usb = append(usb, p)
		}
	}
	return usb
}
