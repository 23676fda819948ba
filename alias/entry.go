package alias

import (
	"fmt"
	"strings"

	"github.com/ardnew/comi/serial"
)

// Entry is one user-configured binding from a device identity to a name.
//
// An empty Alias marks a known device that should not be displayed.
type Entry struct {
	Alias        string  `json:"alias" yaml:"alias"`
	ProductID    uint16  `json:"product_id" yaml:"product_id"`
	SerialNumber string  `json:"serial_number" yaml:"serial_number"`
	Manufacturer *string `json:"manufacturer" yaml:"manufacturer"`
	ProductName  *string `json:"product_name" yaml:"product_name"`
}

// Config is an ordered list of alias entries.
type Config []Entry

// NewEntry returns an unlabeled entry capturing the identity of a port.
func NewEntry(d serial.Descriptor) Entry {
	return Entry{
		ProductID:    d.ProductID,
		SerialNumber: strings.TrimSpace(d.SerialNumber),
		Manufacturer: optional(d.Manufacturer),
		ProductName:  optional(d.ProductName),
	}
}

// Identity returns the identifying fields of the entry.
func (e Entry) Identity() Identity {
	return Identity{
		ProductID:    e.ProductID,
		SerialNumber: strings.TrimSpace(e.SerialNumber),
		Manufacturer: deref(e.Manufacturer),
		ProductName:  deref(e.ProductName),
	}
}

// Equal reports whether every field of e and o is equal. An optional field
// that is not reported equals only another unreported field.
func (e Entry) Equal(o Entry) bool {
	return e.Alias == o.Alias && e.Identity() == o.Identity()
}

// String returns a single-line description of the entry.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "alias=%q pid=0x%04x serial=%q", e.Alias, e.ProductID, e.SerialNumber)
	if m := deref(e.Manufacturer); m != "" {
		fmt.Fprintf(&b, " manufacturer=%q", m)
	}
	if p := deref(e.ProductName); p != "" {
		fmt.Fprintf(&b, " product=%q", p)
	}
	return b.String()
}

// optional returns a pointer to the trimmed s, or nil when s is blank.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// deref returns the trimmed value of p, or the empty string when p is nil.
func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
