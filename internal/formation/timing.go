package formation

import (
	"fmt"
	"time"
)

const (
	// AnimationDuration is how long a side takes to move into a new shape.
	AnimationDuration = 1200 * time.Millisecond
	// ResetDuration is how long players take to walk back to their slots.
	ResetDuration = 1200 * time.Millisecond
	// CounterDelay separates the end of a home change from the away
	// side's counter.
	CounterDelay = 800 * time.Millisecond
	// CounterFlag is how long the "adapting" flag stays raised.
	CounterFlag = 2000 * time.Millisecond
)

// Speed is a playback duration preset.
type Speed string

const (
	Slow    Speed = "slow"
	Normal  Speed = "normal"
	Fast    Speed = "fast"
	Instant Speed = "instant"
)

var speeds = map[Speed]time.Duration{
	Slow:    2400 * time.Millisecond,
	Normal:  1400 * time.Millisecond,
	Fast:    800 * time.Millisecond,
	Instant: 300 * time.Millisecond,
}

const DefaultSpeed = Normal

func (s Speed) Duration() (time.Duration, error) {
	d, ok := speeds[s]
	if !ok {
		return 0, fmt.Errorf("unknown playback speed %q", s)
	}
	return d, nil
}
