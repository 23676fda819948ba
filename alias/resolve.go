package alias

import (
	"fmt"
	"strings"

	"github.com/ardnew/comi/pkg"
	"github.com/ardnew/comi/serial"
)

// Comparison records one device-to-entry comparison made while resolving.
type Comparison struct {
	Port   serial.Descriptor
	Index  int
	Entry  Entry
	Fields []FieldResult // Left is the device, Right the entry
	Match  bool
}

// Resolution pairs a port with the entry it resolved to, if any.
type Resolution struct {
	Port     serial.Descriptor
	Entry    Entry
	Resolved bool
}

// Hidden reports whether the port resolved to an unlabeled entry.
func (r Resolution) Hidden() bool {
	return r.Resolved && r.Entry.Alias == ""
}

// Labeled reports whether the port resolved to a named entry.
func (r Resolution) Labeled() bool {
	return r.Resolved && r.Entry.Alias != ""
}

// Resolve returns the first entry of c whose identity is fuzzy-equal to the
// port's. Ports not backed by USB never resolve.
func (c Config) Resolve(d serial.Descriptor) (Entry, bool) {
	return NewResolver(c).Resolve(d)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrace registers fn to receive every comparison the resolver makes.
func WithTrace(fn func(Comparison)) Option {
	return func(r *Resolver) {
		r.trace = fn
	}
}

// Resolver resolves ports against a fixed configuration.
type Resolver struct {
	config Config
	trace  func(Comparison)
}

// NewResolver returns a resolver for c.
func NewResolver(c Config, opts ...Option) *Resolver {
	r := &Resolver{config: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first configured entry matching d.
func (r *Resolver) Resolve(d serial.Descriptor) (Entry, bool) {
	if !d.USB {
		return Entry{}, false
	}

	id := DeviceIdentity(d)
	for i, entry := range r.config {
		fields := Compare(id, entry.Identity())
		match := matches(fields)
		if r.trace != nil {
			r.trace(Comparison{Port: d, Index: i, Entry: entry, Fields: fields, Match: match})
		}
		if match {
			pkg.LogDebug(pkg.ComponentAlias, "resolved port",
				"port", d.PortName, "alias", entry.Alias, "entry", i)
			return entry, true
		}
	}
	return Entry{}, false
}

// ResolveAll resolves every USB port in ports, preserving order. Ports not
// backed by USB are omitted.
func (r *Resolver) ResolveAll(ports []serial.Descriptor) []Resolution {
	usb := serial.USBOnly(ports)
	res := make([]Resolution, 0, len(usb))
	for _, p := range usb {
		entry, ok := r.Resolve(p)
		res = append(res, Resolution{Port: p, Entry: entry, Resolved: ok})
	}
	return res
}

// Lookup returns the port currently bound to the alias name. The name is
// trimmed, then compared to entry aliases exactly. The error wraps
// pkg.ErrAliasNotFound when no attached port resolves to that alias.
func (r *Resolver) Lookup(ports []serial.Descriptor, name string) (serial.Descriptor, error) {
	name = strings.TrimSpace(name)
	if name != "" {
		for _, res := range r.ResolveAll(ports) {
			if res.Entry.Alias == name {
				return res.Port, nil
			}
		}
	}
	return serial.Descriptor{}, fmt.Errorf("%w: %q", pkg.ErrAliasNotFound, name)
}

// Unresolved returns an unlabeled entry for every USB port in ports that does
// not resolve and whose identity is not already captured by an earlier
// returned entry. Ports without a serial number are skipped since they can
// never resolve.
func (r *Resolver) Unresolved(ports []serial.Descriptor) Config {
	var added Config
	for _, res := range r.ResolveAll(ports) {
		if res.Resolved {
			continue
		}
		entry := NewEntry(res.Port)
		if entry.SerialNumber == "" {
			continue
		}
		if _, dup := added.Resolve(res.Port); dup {
			continue
		}
		added = append(added, entry)
	}
	return added
}
