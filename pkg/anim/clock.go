// Package anim drives scenes: a Pipeline ticks one scene into frames and a
// Selector keeps at most one pipeline running.
package anim

import "time"

// Clock creates the tickers that pace pipelines.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// WallClock paces pipelines with time.Ticker.
type WallClock struct{}

// NewTicker returns a ticker backed by time.NewTicker.
func (WallClock) NewTicker(d time.Duration) Ticker {
	return wallTicker{time.NewTicker(d)}
}

type wallTicker struct{ t *time.Ticker }

func (w wallTicker) C() <-chan time.Time { return w.t.C }

func (w wallTicker) Stop() { w.t.Stop() }

// Interval converts a frame rate to a tick interval, falling back to 60 fps
// for non-positive rates.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
