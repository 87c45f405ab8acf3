// Package frame supplies the "run this again before the next repaint"
// primitive that animations are driven by. Everything scheduled through a
// Host runs on one goroutine, so callers never need locks around board
// state.
package frame

import "time"

// Callback receives the frame timestamp, measured from host start.
type Callback func(now time.Duration)

// Handle identifies a pending frame callback or timer. Zero is never
// issued.
type Handle uint64

type Host interface {
	RequestFrame(cb Callback) Handle
	CancelFrame(h Handle)
	AfterFunc(d time.Duration, fn func()) Handle
	CancelTimer(h Handle)
	Now() time.Duration
}
