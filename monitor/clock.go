package monitor

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/ardnew/comi/monitor Clock

import "time"

// Clock abstracts the wait between polls.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// realClock implements Clock using the real time package.
type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
