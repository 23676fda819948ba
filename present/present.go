// Package present writes port listings, lookup results, and alias
// comparison traces to a terminal.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ardnew/comi/alias"
	"github.com/ardnew/comi/serial"
)

// Separator precedes every port block and closes a non-empty listing.
const Separator = "-------"

// Messages printed when nothing can be listed.
const (
	MsgNoSerialPorts = "No serial ports found."
	MsgNoCOMPorts    = "No COM ports found."
)

// IDNamer names USB vendor and product IDs. *usbid.Database implements it.
type IDNamer interface {
	LookupVendor(vid uint16) string
	LookupProduct(vid, pid uint16) string
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithColor enables or disables ANSI styling.
func WithColor(enabled bool) Option {
	return func(p *Presenter) {
		p.color = enabled
	}
}

// WithIDNames names vendor IDs in unresolved port blocks, and supplies the
// product name when the device does not report one.
func WithIDNames(n IDNamer) Option {
	return func(p *Presenter) {
		p.names = n
	}
}

// Presenter renders to a single writer.
type Presenter struct {
	out    io.Writer
	color  bool
	names  IDNamer
	styles styles
}

type styles struct {
	port      lipgloss.Style
	alias     lipgloss.Style
	label     lipgloss.Style
	separator lipgloss.Style
	match     lipgloss.Style
	miss      lipgloss.Style
}

// New returns a presenter writing to w. Styling is off unless enabled with
// WithColor.
func New(w io.Writer, opts ...Option) *Presenter {
	p := &Presenter{out: w}
	for _, opt := range opts {
		opt(p)
	}

	r := lipgloss.NewRenderer(w)
	if !p.color {
		r.SetColorProfile(termenv.Ascii)
	}
	p.styles = styles{
		port:      r.NewStyle().Foreground(lipgloss.Color("6")),
		alias:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		label:     r.NewStyle().Faint(true),
		separator: r.NewStyle().Faint(true),
		match:     r.NewStyle().Foreground(lipgloss.Color("2")),
		miss:      r.NewStyle().Foreground(lipgloss.Color("1")),
	}
	return p
}

// Clear erases the terminal and homes the cursor.
func (p *Presenter) Clear() {
	termenv.NewOutput(p.out).ClearScreen()
}

// Summary counts the ports of a listing.
type Summary struct {
	Labeled    int // Resolved to a named entry
	Hidden     int // Resolved to an unlabeled entry
	Unresolved int // Matched no entry
}

// Visible returns the number of port blocks printed.
func (s Summary) Visible() int {
	return s.Labeled + s.Unresolved
}

// Summarize counts res.
func Summarize(res []alias.Resolution) Summary {
	var s Summary
	for _, r := range res {
		switch {
		case r.Hidden():
			s.Hidden++
		case r.Labeled():
			s.Labeled++
		default:
			s.Unresolved++
		}
	}
	return s
}

// String returns the summary line.
func (s Summary) String() string {
	return fmt.Sprintf("%d shown: %d labeled, %d unresolved, %d hidden",
		s.Visible(), s.Labeled, s.Unresolved, s.Hidden)
}

// Ports writes one block per visible port followed by the summary line.
// Hidden ports are counted but not printed.
func (p *Presenter) Ports(res []alias.Resolution) Summary {
	sum := Summarize(res)
	for _, r := range res {
		switch {
		case r.Hidden():
		case r.Labeled():
			p.separator()
			fmt.Fprintf(p.out, "%s %s\n", p.styles.port.Render(r.Port.PortName), p.styles.alias.Render(r.Entry.Alias))
		default:
			p.separator()
			p.unresolved(r.Port)
		}
	}

	if sum.Visible() == 0 {
		fmt.Fprintln(p.out, MsgNoCOMPorts)
	} else {
		p.separator()
	}
	fmt.Fprintln(p.out, p.styles.label.Render(sum.String()))
	return sum
}

// NoSerialPorts reports that enumeration found nothing at all.
func (p *Presenter) NoSerialPorts() {
	fmt.Fprintln(p.out, MsgNoSerialPorts)
}

// LookupResult writes the bare port name, without a trailing newline, so
// the output can be captured by a shell.
func (p *Presenter) LookupResult(port serial.Descriptor) {
	fmt.Fprint(p.out, port.PortName)
}

// LookupMiss reports that no attached port carries name.
func (p *Presenter) LookupMiss(name string, attached int) {
	if attached == 0 {
		fmt.Fprintln(p.out, MsgNoCOMPorts)
		return
	}
	fmt.Fprintf(p.out, "No COM port found with alias: %s\n", name)
}

// SettingsPath reports the settings file in use.
func (p *Presenter) SettingsPath(path string) {
	fmt.Fprintf(p.out, "Using %q\n", path)
}

// Comparison writes the field-by-field comparison of a port with an entry.
func (p *Presenter) Comparison(c alias.Comparison) {
	verdict := p.styles.miss.Render("no match")
	if c.Match {
		verdict = p.styles.match.Render("match")
	}
	fmt.Fprintf(p.out, "Checking %s against entry %d (%q): %s\n",
		c.Port.PortName, c.Index, c.Entry.Alias, verdict)
	for _, f := range c.Fields {
		fmt.Fprintf(p.out, "\t%-14s %-8s device=%q entry=%q\n", f.Field, f.Outcome, f.Left, f.Right)
	}
}

func (p *Presenter) separator() {
	fmt.Fprintln(p.out, p.styles.separator.Render(Separator))
}

func (p *Presenter) unresolved(d serial.Descriptor) {
	fmt.Fprintln(p.out, p.styles.port.Render(d.PortName))

	field := func(name, value string) {
		fmt.Fprintf(p.out, "\t%s %s\n", p.styles.label.Render(name+":"), value)
	}
	field("Product", p.product(d))
	field("Manufacturer", d.Manufacturer)
	field("Vid", p.vendor(d.VendorID))
	field("Pid", fmt.Sprintf("%d (0x%04x)", d.ProductID, d.ProductID))
	field("Serial Number", d.SerialNumber)
}

func (p *Presenter) vendor(vid uint16) string {
	s := fmt.Sprintf("0x%04x", vid)
	if p.names == nil {
		return s
	}
	if name := strings.TrimSpace(p.names.LookupVendor(vid)); name != "" {
		s += " (" + name + ")"
	}
	return s
}

func (p *Presenter) product(d serial.Descriptor) string {
	if d.ProductName != "" || p.names == nil {
		return d.ProductName
	}
	return p.names.LookupProduct(d.VendorID, d.ProductID)
}
