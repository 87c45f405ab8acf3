package frame

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

const DefaultRate = 60

type timer struct {
	due time.Duration
	fn  func()
}

// Loop is a ticker-driven Host. Frame callbacks, timers and posted
// functions all run on the goroutine that called Run; the Host methods
// must only be called from that goroutine (or before Run starts).
type Loop struct {
	rate    int
	started time.Time
	posts   chan func()
	done    chan struct{}
	log     zerolog.Logger

	next       Handle
	frames     map[Handle]Callback
	frameOrder []Handle
	timers     map[Handle]timer
	afterFrame []func(now time.Duration)
}

func NewLoop(rate int, log zerolog.Logger) *Loop {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Loop{
		rate:    rate,
		started: time.Now(),
		posts:   make(chan func(), 64),
		done:    make(chan struct{}),
		log:     log,
		frames:  make(map[Handle]Callback),
		timers:  make(map[Handle]timer),
	}
}

func (l *Loop) Now() time.Duration {
	return time.Since(l.started)
}

func (l *Loop) RequestFrame(cb Callback) Handle {
	l.next++
	l.frames[l.next] = cb
	l.frameOrder = append(l.frameOrder, l.next)
	return l.next
}

func (l *Loop) CancelFrame(h Handle) {
	delete(l.frames, h)
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	l.next++
	l.timers[l.next] = timer{due: l.Now() + d, fn: fn}
	return l.next
}

func (l *Loop) CancelTimer(h Handle) {
	delete(l.timers, h)
}

// OnFrame registers fn to run after every tick's frame callbacks.
func (l *Loop) OnFrame(fn func(now time.Duration)) {
	l.afterFrame = append(l.afterFrame, fn)
}

// Post queues fn to run on the loop goroutine. It reports false once the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done closes when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(time.Second / time.Duration(l.rate))
	defer ticker.Stop()

	l.log.Debug().Int("rate", l.rate).Msg("frame loop started")
	for {
		select {
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.tick(l.Now())
		case <-ctx.Done():
			l.log.Debug().Msg("frame loop stopped")
			return
		}
	}
}

func (l *Loop) tick(now time.Duration) {
	for _, h := range dueTimers(l.timers, now) {
		t, ok := l.timers[h]
		if !ok {
			continue
		}
		delete(l.timers, h)
		t.fn()
	}

	batch := l.frameOrder
	l.frameOrder = nil
	for _, h := range batch {
		cb, ok := l.frames[h]
		if !ok {
			continue
		}
		delete(l.frames, h)
		cb(now)
	}

	for _, fn := range l.afterFrame {
		fn(now)
	}
}

// dueTimers returns the handles of timers due at now, earliest first.
func dueTimers(timers map[Handle]timer, now time.Duration) []Handle {
	var due []Handle
	for h, t := range timers {
		if t.due <= now {
			due = append(due, h)
		}
	}
	slices.SortFunc(due, func(a, b Handle) int {
		if c := cmp.Compare(timers[a].due, timers[b].due); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return due
}
