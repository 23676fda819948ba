package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/comi/pkg"
	"github.com/ardnew/comi/serial"
)

var widget = serial.Descriptor{
	PortName:     "/dev/ttyUSB0",
	USB:          true,
	ProductID:    0x1234,
	SerialNumber: "ABC123",
	Manufacturer: "Acme",
	ProductName:  "Widget",
}

func TestResolve_ExactMatch(t *testing.T) {
	printer := Entry{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123", Manufacturer: str("Acme"), ProductName: str("Widget")}
	cfg := Config{printer}

	entry, ok := cfg.Resolve(widget)
	require.True(t, ok)
	assert.Equal(t, printer, entry)
}

func TestResolve_SerialMismatch(t *testing.T) {
	cfg := Config{{Alias: "printer", ProductID: 0x1234, SerialNumber: "XYZ999", Manufacturer: str("Acme"), ProductName: str("Widget")}}

	_, ok := cfg.Resolve(widget)
	assert.False(t, ok)

	res := NewResolver(cfg).ResolveAll([]serial.Descriptor{widget})
	require.Len(t, res, 1)
	assert.False(t, res[0].Resolved)
	assert.Equal(t, widget, res[0].Port)
}

func TestResolve_FirstMatchWins(t *testing.T) {
	cfg := Config{
		{Alias: "other", ProductID: 0x9999, SerialNumber: "ABC123"},
		{Alias: "first", ProductID: 0x1234, SerialNumber: "ABC123"},
		{Alias: "second", ProductID: 0x1234, SerialNumber: "ABC123", Manufacturer: str("Acme")},
	}

	entry, ok := cfg.Resolve(widget)
	require.True(t, ok)
	assert.Equal(t, "first", entry.Alias)
}

func TestResolve_DeviceWithoutSerial(t *testing.T) {
	cfg := Config{{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123"}}
	d := widget
	d.SerialNumber = ""

	_, ok := cfg.Resolve(d)
	assert.False(t, ok)
}

func TestResolve_NonUSB(t *testing.T) {
	cfg := Config{{Alias: "printer", ProductID: 0, SerialNumber: "ABC123"}}

	_, ok := cfg.Resolve(serial.Descriptor{PortName: "/dev/ttyS0", SerialNumber: "ABC123"})
	assert.False(t, ok)
}

func TestResolve_Trace(t *testing.T) {
	cfg := Config{
		{Alias: "miss", ProductID: 0x1234, SerialNumber: "XYZ999"},
		{Alias: "hit", ProductID: 0x1234, SerialNumber: "ABC123"},
		{Alias: "unvisited", ProductID: 0x1234, SerialNumber: "ABC123"},
	}

	var seen []Comparison
	r := NewResolver(cfg, WithTrace(func(c Comparison) { seen = append(seen, c) }))

	_, ok := r.Resolve(widget)
	require.True(t, ok)
	require.Len(t, seen, 2)
	assert.False(t, seen[0].Match)
	assert.Equal(t, 0, seen[0].Index)
	assert.True(t, seen[1].Match)
	assert.Equal(t, "hit", seen[1].Entry.Alias)
	assert.Len(t, seen[1].Fields, 4)
}

func TestResolution_HiddenLabeled(t *testing.T) {
	hidden := Resolution{Resolved: true}
	labeled := Resolution{Resolved: true, Entry: Entry{Alias: "printer"}}
	unresolved := Resolution{}

	assert.True(t, hidden.Hidden())
	assert.False(t, hidden.Labeled())
	assert.True(t, labeled.Labeled())
	assert.False(t, labeled.Hidden())
	assert.False(t, unresolved.Hidden())
	assert.False(t, unresolved.Labeled())
}

func TestLookup(t *testing.T) {
	cfg := Config{
		{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123"},
		{Alias: "", ProductID: 0x5678, SerialNumber: "HIDDEN"},
	}
	r := NewResolver(cfg)
	hiddenPort := serial.Descriptor{PortName: "/dev/ttyUSB1", USB: true, ProductID: 0x5678, SerialNumber: "HIDDEN"}
	ports := []serial.Descriptor{{PortName: "/dev/ttyS0"}, hiddenPort, widget}

	port, err := r.Lookup(ports, " printer ")
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", port.PortName)

	_, err = r.Lookup(ports, "Printer")
	assert.ErrorIs(t, err, pkg.ErrAliasNotFound)

	_, err = r.Lookup(ports, "")
	assert.ErrorIs(t, err, pkg.ErrAliasNotFound)
}

func TestLookup_NoMatchingDevice(t *testing.T) {
	r := NewResolver(Config{{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123"}})

	other := widget
	other.SerialNumber = "XYZ999"

	_, err := r.Lookup([]serial.Descriptor{other}, "printer")
	assert.ErrorIs(t, err, pkg.ErrAliasNotFound)
	assert.Contains(t, err.Error(), `"printer"`)

	_, err = r.Lookup(nil, "printer")
	assert.ErrorIs(t, err, pkg.ErrAliasNotFound)
}

func TestUnresolved(t *testing.T) {
	cfg := Config{{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123"}}
	fresh := serial.Descriptor{PortName: "/dev/ttyACM0", USB: true, ProductID: 0x0043, SerialNumber: "NEW1", ProductName: "Uno"}
	twin := fresh
	twin.PortName = "/dev/ttyACM1"
	noSerial := serial.Descriptor{PortName: "/dev/ttyACM2", USB: true, ProductID: 0x0043}

	added := NewResolver(cfg).Unresolved([]serial.Descriptor{widget, fresh, twin, noSerial, {PortName: "/dev/ttyS0"}})
	require.Len(t, added, 1)
	assert.Equal(t, "NEW1", added[0].SerialNumber)
	assert.Empty(t, added[0].Alias)
	require.NotNil(t, added[0].ProductName)
	assert.Equal(t, "Uno", *added[0].ProductName)
}
