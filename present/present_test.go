package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/comi/alias"
	"github.com/ardnew/comi/serial"
)

type idMap map[uint32]string

func (m idMap) LookupVendor(vid uint16) string { return m[uint32(vid)<<16] }

func (m idMap) LookupProduct(vid, pid uint16) string {
	return m[uint32(vid)<<16|uint32(pid)]
}

var (
	labeledPort = serial.Descriptor{PortName: "/dev/ttyUSB0", USB: true, ProductID: 0x1234, SerialNumber: "ABC123"}
	hiddenPort  = serial.Descriptor{PortName: "/dev/ttyUSB1", USB: true, ProductID: 0x5678, SerialNumber: "HIDE"}
	rawPort     = serial.Descriptor{
		PortName:     "/dev/ttyACM0",
		USB:          true,
		VendorID:     0x2341,
		ProductID:    0x0043,
		SerialNumber: "XYZ999",
		Manufacturer: "Arduino",
		ProductName:  "Uno",
	}
)

func TestPorts(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, WithIDNames(idMap{0x2341_0000: "Arduino SA"}))

	sum := p.Ports([]alias.Resolution{
		{Port: labeledPort, Entry: alias.Entry{Alias: "printer"}, Resolved: true},
		{Port: hiddenPort, Resolved: true},
		{Port: rawPort},
	})

	assert.Equal(t, Summary{Labeled: 1, Hidden: 1, Unresolved: 1}, sum)
	assert.Equal(t, strings.Join([]string{
		"-------",
		"/dev/ttyUSB0 printer",
		"-------",
		"/dev/ttyACM0",
		"\tProduct: Uno",
		"\tManufacturer: Arduino",
		"\tVid: 0x2341 (Arduino SA)",
		"\tPid: 67 (0x0043)",
		"\tSerial Number: XYZ999",
		"-------",
		"2 shown: 1 labeled, 1 unresolved, 1 hidden",
		"",
	}, "\n"), buf.String())
	assert.NotContains(t, buf.String(), "/dev/ttyUSB1")
}

func TestPorts_AllHidden(t *testing.T) {
	var buf bytes.Buffer
	sum := New(&buf).Ports([]alias.Resolution{{Port: hiddenPort, Resolved: true}})

	assert.Equal(t, 0, sum.Visible())
	assert.Equal(t, MsgNoCOMPorts+"\n0 shown: 0 labeled, 0 unresolved, 1 hidden\n", buf.String())
}

func TestPorts_UnknownVendor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithIDNames(idMap{})).Ports([]alias.Resolution{{Port: rawPort}})
	assert.Contains(t, buf.String(), "\tVid: 0x2341\n")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, 0, Summary{Hidden: 3}.Visible())
}

func TestLookup(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.LookupResult(labeledPort)
	assert.Equal(t, "/dev/ttyUSB0", buf.String(), "no trailing newline")

	buf.Reset()
	p.LookupMiss("printer", 2)
	assert.Equal(t, "No COM port found with alias: printer\n", buf.String())

	buf.Reset()
	p.LookupMiss("printer", 0)
	assert.Equal(t, MsgNoCOMPorts+"\n", buf.String())
}

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	id := alias.DeviceIdentity(labeledPort)
	entry := alias.Entry{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123"}
	p.Comparison(alias.Comparison{
		Port:   labeledPort,
		Index:  0,
		Entry:  entry,
		Fields: alias.Compare(id, entry.Identity()),
		Match:  true,
	})

	out := buf.String()
	assert.Contains(t, out, `Checking /dev/ttyUSB0 against entry 0 ("printer"): match`)
	assert.Contains(t, out, "serial_number")
	assert.Contains(t, out, "skipped")
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Clear()
	assert.Contains(t, buf.String(), "\x1b[2J")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.NoSerialPorts()
	p.SettingsPath("/home/u/Documents/Comi/settings.json")
	assert.Equal(t, MsgNoSerialPorts+"\nUsing \"/home/u/Documents/Comi/settings.json\"\n", buf.String())
}

func TestPorts_ProductFallback(t *testing.T) {
	var buf bytes.Buffer
	port := rawPort
	port.ProductName = ""
	New(&buf, WithIDNames(idMap{0x2341_0043: "Uno R3 (CDC ACM)"})).
		Ports([]alias.Resolution{{Port: port}})
	assert.Contains(t, buf.String(), "\tProduct: Uno R3 (CDC ACM)\n")
}
