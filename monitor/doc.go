// Package monitor re-renders the attached serial port list whenever the
// number of attached ports changes.
//
// A [Loop] enumerates ports, compares the count with the count it last
// rendered, renders on a difference, and then waits a fixed interval before
// the next attempt. The comparison is by count only: swapping one device for
// another between two polls does not trigger a render.
//
// The loop state is a [State] value threaded from one tick to the next, and
// the wait is interruptible: cancelling the context passed to [Loop.Run]
// ends the loop promptly. An optional trigger channel, such as the events of
// a serial.HotplugWatcher, cuts the wait short so a change is picked up
// immediately.
package monitor
