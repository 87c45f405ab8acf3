package motion

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/frame"
)

type Status uint8

const (
	Idle Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// StepFunc receives the eased progress of a run. The last call of a run
// that was not cancelled is always StepFunc(1, true).
type StepFunc func(t float64, done bool)

// Scheduler runs one eased transition at a time on a frame.Host. Starting
// a new run cancels the current one. Frames that were queued for a run
// which has since been cancelled or replaced do nothing.
type Scheduler struct {
	host frame.Host
	log  zerolog.Logger
	name string

	status   Status
	gen      uint64
	handle   frame.Handle
	started  bool
	startAt  time.Duration
	duration time.Duration
	step     StepFunc
}

func NewScheduler(host frame.Host, name string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		host: host,
		name: name,
		log:  log.With().Str("scheduler", name).Logger(),
	}
}

func (s *Scheduler) Status() Status { return s.status }

func (s *Scheduler) Running() bool { return s.status == Running }

// Start begins a run of duration d. The start timestamp is taken from the
// first frame, not from the call.
func (s *Scheduler) Start(d time.Duration, step StepFunc) {
	s.Cancel()
	s.status = Running
	s.started = false
	s.duration = d
	s.step = step
	s.log.Debug().Dur("duration", d).Msg("run started")
	s.schedule()
}

// Cancel stops the current run where it is. Positions already written are
// kept. Cancelling an idle scheduler is a no-op.
func (s *Scheduler) Cancel() {
	s.gen++
	if s.handle != 0 {
		s.host.CancelFrame(s.handle)
		s.handle = 0
	}
	if s.status == Running {
		s.log.Debug().Msg("run cancelled")
	}
	s.status = Idle
	s.step = nil
}

// Tick advances the run to now. The frame host calls it; tests may call it
// directly with synthetic timestamps.
func (s *Scheduler) Tick(now time.Duration) {
	if s.status != Running {
		return
	}
	if s.handle != 0 {
		s.host.CancelFrame(s.handle)
		s.handle = 0
	}
	if !s.started {
		s.started = true
		s.startAt = now
	}

	raw := 1.0
	if s.duration > 0 {
		raw = min(float64(now-s.startAt)/float64(s.duration), 1)
	}

	step := s.step
	if raw >= 1 {
		s.status = Idle
		s.step = nil
		s.gen++
		s.log.Debug().Msg("run finished")
		step(1, true)
		return
	}

	gen := s.gen
	step(EaseInOutCubic(raw), false)
	// step may have cancelled or restarted the scheduler.
	if s.gen == gen && s.status == Running {
		s.schedule()
	}
}

func (s *Scheduler) schedule() {
	gen := s.gen
	s.handle = s.host.RequestFrame(func(now time.Duration) {
		if gen != s.gen {
			return
		}
		s.handle = 0
		s.Tick(now)
	})
}
