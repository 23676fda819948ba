package monitor

import (
	"context"
	"time"

	"github.com/ardnew/comi/pkg"
	"github.com/ardnew/comi/serial"
)

// DefaultInterval is the wait between polls.
const DefaultInterval = 100 * time.Millisecond

// unrendered is the State count before the first render. No enumeration
// returns a negative count, so the first tick always renders.
const unrendered = -1

// State is the loop state carried between ticks.
type State struct {
	rendered int // port count of the last render
}

// InitialState returns the state of a loop that has not rendered yet.
func InitialState() State {
	return State{rendered: unrendered}
}

// Rendered returns the port count of the last render, or -1 before the
// first render.
func (s State) Rendered() int {
	return s.rendered
}

// Next returns the state after observing count ports, and whether the
// observation requires a render.
func (s State) Next(count int) (State, bool) {
	if count == s.rendered {
		return s, false
	}
	return State{rendered: count}, true
}

// RenderFunc displays a port list.
type RenderFunc func(ports []serial.Descriptor)

// Option configures a Loop.
type Option func(*Loop)

// WithInterval sets the wait between polls. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithClock replaces the real clock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithTrigger makes every receive on ch end the current wait early.
func WithTrigger(ch <-chan struct{}) Option {
	return func(l *Loop) {
		l.trigger = ch
	}
}

// WithErrorHandler registers fn to receive enumeration failures.
func WithErrorHandler(fn func(error)) Option {
	return func(l *Loop) {
		l.onError = fn
	}
}

// Loop polls an Enumerator and renders when the port count changes.
type Loop struct {
	enum     serial.Enumerator
	render   RenderFunc
	interval time.Duration
	clock    Clock
	trigger  <-chan struct{}
	onError  func(error)
}

// New returns a loop polling enum and rendering with render.
func New(enum serial.Enumerator, render RenderFunc, opts ...Option) *Loop {
	l := &Loop{
		enum:     enum,
		render:   render,
		interval: DefaultInterval,
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tick performs one poll: enumerate, compare with s, render if the count
// changed. An enumeration failure is reported and treated as an empty port
// list for this tick only.
func (l *Loop) Tick(s State) State {
	ports, err := l.enum.Ports()
	if err != nil {
		pkg.LogWarn(pkg.ComponentMonitor, "enumeration failed", "error", err)
		if l.onError != nil {
			l.onError(err)
		}
		ports = nil
	}

	next, changed := s.Next(len(ports))
	if changed {
		pkg.LogDebug(pkg.ComponentMonitor, "port count changed",
			"previous", s.rendered, "current", next.rendered)
		l.render(ports)
	}
	return next
}

// Run polls until ctx is cancelled. The first tick always renders.
func (l *Loop) Run(ctx context.Context) error {
	s := InitialState()
	for {
		s = l.Tick(s)

		select {
		case <-ctx.Done():
			pkg.LogDebug(pkg.ComponentMonitor, "stopped", "reason", ctx.Err())
			return nil
		case <-l.clock.After(l.interval):
		case <-l.trigger:
			pkg.LogDebug(pkg.ComponentMonitor, "woken by trigger")
		}
	}
}
