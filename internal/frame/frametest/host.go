// Package frametest provides a manually driven frame.Host for tests.
package frametest

import (
	"sort"
	"time"

	"github.com/vladimirvolkov/tactics/internal/frame"
)

type timer struct {
	due time.Duration
	fn  func()
}

// Host advances only when told to. Advance moves the clock, fires due
// timers, then runs the frame callbacks that were pending before the call.
type Host struct {
	now    time.Duration
	next   frame.Handle
	frames map[frame.Handle]frame.Callback
	order  []frame.Handle
	timers map[frame.Handle]timer
}

func New() *Host {
	return &Host{
		frames: make(map[frame.Handle]frame.Callback),
		timers: make(map[frame.Handle]timer),
	}
}

func (h *Host) Now() time.Duration { return h.now }

func (h *Host) RequestFrame(cb frame.Callback) frame.Handle {
	h.next++
	h.frames[h.next] = cb
	h.order = append(h.order, h.next)
	return h.next
}

func (h *Host) CancelFrame(id frame.Handle) { delete(h.frames, id) }

func (h *Host) AfterFunc(d time.Duration, fn func()) frame.Handle {
	h.next++
	h.timers[h.next] = timer{due: h.now + d, fn: fn}
	return h.next
}

func (h *Host) CancelTimer(id frame.Handle) { delete(h.timers, id) }

// PendingFrames is the number of frame callbacks still queued.
func (h *Host) PendingFrames() int { return len(h.frames) }

// PendingTimers is the number of timers not yet fired or cancelled.
func (h *Host) PendingTimers() int { return len(h.timers) }

func (h *Host) Advance(d time.Duration) {
	h.now += d

	var due []frame.Handle
	for id, t := range h.timers {
		if t.due <= h.now {
			due = append(due, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := h.timers[due[i]], h.timers[due[j]]
		if a.due != b.due {
			return a.due < b.due
		}
		return due[i] < due[j]
	})
	for _, id := range due {
		t, ok := h.timers[id]
		if !ok {
			continue
		}
		delete(h.timers, id)
		t.fn()
	}

	batch := h.order
	h.order = nil
	for _, id := range batch {
		cb, ok := h.frames[id]
		if !ok {
			continue
		}
		delete(h.frames, id)
		cb(h.now)
	}
}

// Run advances in steps of interval until total has elapsed.
func (h *Host) Run(total, interval time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += interval {
		h.Advance(interval)
	}
}
