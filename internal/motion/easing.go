// Package motion matches drawn runs to the players (or ball) that should
// follow them and drives the eased playback of those runs.
package motion

import "math"

// EaseInOutCubic is the easing curve every animated transition uses.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
