// Command comi lists USB serial ports, naming the ones it recognizes with
// aliases from a settings file.
//
// Usage:
//
//	comi [flags]
//
// Flags:
//
//	-c, -continuous     Re-render whenever the number of attached ports changes
//	-s, -settings PATH  Settings file (default <Documents>/Comi/settings.json)
//	-a, -alias NAME     Print only the port bound to NAME
//	-v, -verbose        Print the settings path and every alias comparison
//	-save               Append unrecognized devices to the settings file
//	-interval DURATION  Wait between polls in continuous mode (default 100ms)
//	-cpuprofile PATH    Write a CPU profile (requires -tags profile)
//	-memprofile PATH    Write a heap profile on exit (requires -tags profile)
//	-log-json           Write logs as JSON
//	-no-color           Disable styled output
//	-version            Print the version and exit
//
// Example:
//
//	picocom -b 115200 "$(comi -a printer)"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/ardnew/comi/alias"
	"github.com/ardnew/comi/monitor"
	"github.com/ardnew/comi/pkg"
	"github.com/ardnew/comi/pkg/prof"
	"github.com/ardnew/comi/present"
	"github.com/ardnew/comi/serial"
	"github.com/ardnew/comi/settings"
	"github.com/ardnew/comi/usbid"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitMiss  = 1 // lookup found no port for the alias
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tty := term.IsTerminal(int(os.Stdout.Fd()))

	names, err := usbid.Load(usbid.DefaultPaths...)
	if err != nil {
		pkg.LogDebug(pkg.ComponentCLI, "usb id database unavailable", "error", err)
	}

	code := run(ctx, os.Args[1:], env{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		enum:    serial.NewEnumerator(),
		names:   names,
		tty:     tty,
		hotplug: true,
	})
	stop()
	os.Exit(code)
}

// env holds the process resources a run uses.
type env struct {
	stdout  io.Writer
	stderr  io.Writer
	enum    serial.Enumerator
	names   present.IDNamer
	tty     bool // stdout is a terminal
	hotplug bool // wake the monitor on kernel tty events
}

type options struct {
	continuous bool
	settings   string
	alias      string
	verbose    bool
	save       bool
	interval   time.Duration
	cpuProfile string
	memProfile string
	logJSON    bool
	noColor    bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("comi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&o.continuous, "c", false, "Re-render whenever the port count changes")
	fs.BoolVar(&o.continuous, "continuous", false, "Re-render whenever the port count changes")
	fs.StringVar(&o.settings, "s", "", "Settings file path")
	fs.StringVar(&o.settings, "settings", "", "Settings file path")
	fs.StringVar(&o.alias, "a", "", "Print only the port bound to this alias")
	fs.StringVar(&o.alias, "alias", "", "Print only the port bound to this alias")
	fs.BoolVar(&o.verbose, "v", false, "Print the settings path and alias comparisons")
	fs.BoolVar(&o.verbose, "verbose", false, "Print the settings path and alias comparisons")
	fs.BoolVar(&o.save, "save", false, "Append unrecognized devices to the settings file")
	fs.DurationVar(&o.interval, "interval", monitor.DefaultInterval, "Wait between polls in continuous mode")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	fs.StringVar(&o.memProfile, "memprofile", "", "Write a heap profile to this file on exit")
	fs.BoolVar(&o.logJSON, "log-json", false, "Write logs as JSON")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable styled output")
	fs.BoolVar(&o.version, "version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return o, nil
}

func run(ctx context.Context, args []string, e env) int {
	opts, err := parseFlags(args, e.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(e.stdout, "comi %s\n", version)
		return exitOK
	}

	configureLogging(opts, e.stderr)

	session, err := prof.Start(opts.cpuProfile, opts.memProfile)
	if err != nil {
		pkg.LogWarn(pkg.ComponentCLI, "profiling disabled", "error", err)
	} else {
		defer func() {
			if err := session.Stop(); err != nil {
				pkg.LogWarn(pkg.ComponentCLI, "profile not written", "error", err)
			}
		}()
	}

	a := newApp(opts, e)
	switch {
	case opts.alias != "":
		return a.lookup(opts.alias)
	case opts.save:
		a.save()
	case opts.continuous:
		a.watch(ctx)
	default:
		a.list()
	}
	return exitOK
}

func configureLogging(opts options, stderr io.Writer) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	pkg.SetLogLevel(level)
	if opts.logJSON {
		pkg.SetLogger(pkg.NewJSONLogger(stderr, nil))
	} else {
		pkg.SetLogger(pkg.NewLogger(stderr, nil))
	}
}

// app is a configured run: settings loaded, resolver built, presenters
// attached to their writers.
type app struct {
	opts     options
	env      env
	path     string // settings file, "" when none can be located
	config   alias.Config
	resolver *alias.Resolver
	out      *present.Presenter // listings and lookup results
	diag     *present.Presenter // verbose diagnostics
}

func newApp(opts options, e env) *app {
	pres := []present.Option{present.WithColor(e.tty && !opts.noColor)}
	if e.names != nil {
		pres = append(pres, present.WithIDNames(e.names))
	}

	a := &app{
		opts: opts,
		env:  e,
		out:  present.New(e.stdout, pres...),
	}

	// Lookup output is captured by scripts; keep diagnostics off stdout.
	a.diag = a.out
	if opts.alias != "" {
		a.diag = present.New(e.stderr, present.WithColor(false))
	}

	if opts.settings == "" {
		installDefault()
	}

	path, ok := settings.FindPath(opts.settings)
	a.path = path
	if ok {
		if opts.verbose {
			a.diag.SettingsPath(path)
		}
		a.config = loadConfig(path)
	}

	var ropts []alias.Option
	if opts.verbose {
		ropts = append(ropts, alias.WithTrace(a.diag.Comparison))
	}
	a.resolver = alias.NewResolver(a.config, ropts...)
	return a
}

// installDefault creates the default settings file from the template
// shipped next to the executable, if it does not exist yet.
func installDefault() {
	target, err := settings.DefaultPath()
	if err != nil {
		pkg.LogWarn(pkg.ComponentCLI, "cannot install settings", "error", err)
		return
	}
	template, err := settings.TemplatePath()
	if err != nil {
		pkg.LogDebug(pkg.ComponentCLI, "executable path unknown", "error", err)
	}
	if _, err := settings.Install(target, template); err != nil {
		pkg.LogWarn(pkg.ComponentCLI, "cannot install settings", "error", err)
	}
}

// loadConfig reads and validates the settings at path. A malformed file
// yields no entries; validation problems are reported and the entries used
// as written.
func loadConfig(path string) alias.Config {
	s, err := settings.Load(path)
	if err != nil {
		pkg.LogWarn(pkg.ComponentCLI, "ignoring settings", "error", err)
		return nil
	}

	if err := s.ComPorts.Validate(); err != nil {
		attrs := []any{"path", path, "error", err}
		var conflict *alias.ConflictError
		if errors.As(err, &conflict) {
			attrs = append(attrs, "kind", conflict.Kind.String())
		}
		pkg.LogWarn(pkg.ComponentCLI, "settings contain conflicting entries", attrs...)
	}
	return s.ComPorts
}

// ports enumerates, logging and discarding a failure.
func (a *app) ports() []serial.Descriptor {
	ports, err := a.env.enum.Ports()
	if err != nil {
		pkg.LogWarn(pkg.ComponentCLI, "enumeration failed", "error", err)
		return nil
	}
	return ports
}

func (a *app) lookup(name string) int {
	ports := a.ports()
	port, err := a.resolver.Lookup(ports, name)
	if err != nil {
		pkg.LogDebug(pkg.ComponentCLI, "lookup failed", "error", err)
		a.out.LookupMiss(name, len(serial.USBOnly(ports)))
		return exitMiss
	}
	a.out.LookupResult(port)
	return exitOK
}

func (a *app) save() {
	added := a.resolver.Unresolved(a.ports())
	n, err := settings.Append(a.path, added)
	if err != nil {
		pkg.LogError(pkg.ComponentCLI, "cannot save devices", "path", a.path, "error", err)
		return
	}
	fmt.Fprintf(a.env.stdout, "Saved %d new device(s) to %q\n", n, a.path)
}

func (a *app) list() {
	a.render(a.ports())
}

func (a *app) render(ports []serial.Descriptor) {
	if len(ports) == 0 {
		a.out.NoSerialPorts()
		return
	}
	a.out.Ports(a.resolver.ResolveAll(ports))
}

func (a *app) watch(ctx context.Context) {
	render := func(ports []serial.Descriptor) {
		if a.env.tty {
			a.out.Clear()
		}
		a.render(ports)
	}

	opts := []monitor.Option{monitor.WithInterval(a.opts.interval)}
	if a.env.hotplug {
		if ch, ok := startHotplug(ctx); ok {
			opts = append(opts, monitor.WithTrigger(ch))
		}
	}

	if err := monitor.New(a.env.enum, render, opts...).Run(ctx); err != nil {
		pkg.LogError(pkg.ComponentCLI, "monitor stopped", "error", err)
	}
}

// startHotplug watches kernel tty events so the monitor can re-poll as soon
// as a port appears or disappears. Platforms without a watcher poll only.
func startHotplug(ctx context.Context) (<-chan struct{}, bool) {
	w, err := serial.NewHotplugWatcher()
	if err != nil {
		pkg.LogDebug(pkg.ComponentCLI, "hotplug unavailable", "error", err)
		return nil, false
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			pkg.LogWarn(pkg.ComponentHotplug, "watcher stopped", "error", err)
		}
	}()
	return w.Events(), true
}
