package serial

import (
	"fmt"
	"strconv"
	"strings"

	"go.bug.st/serial/enumerator"

	"github.com/ardnew/comi/pkg"
)

// PortEnumerator lists ports through the native OS APIs wrapped by
// go.bug.st/serial/enumerator. It does not report manufacturer strings.
type PortEnumerator struct {
	list func() ([]*enumerator.PortDetails, error)
}

// NewPortEnumerator returns an enumerator backed by the OS port APIs.
func NewPortEnumerator() *PortEnumerator {
	return &PortEnumerator{list: enumerator.GetDetailedPortsList}
}

// Ports implements Enumerator.
func (e *PortEnumerator) Ports() ([]Descriptor, error) {
	details, err := e.list()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrEnumeration, err)
	}

	ports := make([]Descriptor, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		desc := Descriptor{PortName: d.Name}
		if d.IsUSB {
			desc.USB = true
			desc.VendorID = parseHexID(d.VID)
			desc.ProductID = parseHexID(d.PID)
			desc.SerialNumber = strings.TrimSpace(d.SerialNumber)
			desc.ProductName = trimPortSuffix(d.Product, d.Name)
		}
		ports = append(ports, desc)
	}

	pkg.LogDebug(pkg.ComponentEnumerator, "listed ports", "backend", "os", "count", len(ports))
	return ports, nil
}

// parseHexID parses a hexadecimal VID or PID string, returning zero when the
// OS reported something unparseable.
func parseHexID(s string) uint16 {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
