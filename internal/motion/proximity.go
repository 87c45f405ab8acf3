package motion

import (
	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

const (
	// SnapRadius captures endpoints onto players and matches runs to the
	// players that start them.
	SnapRadius = 3.5
	// BallRadius matches a run to the ball for ball-only playback.
	BallRadius = 6.0
)

// Candidate is a mover projected into pitch space.
type Candidate struct {
	ID       string
	Position pitch.Position
}

// FindNearest returns the candidate closest to point whose distance is
// strictly below radius. On equal distances the earlier candidate wins.
func FindNearest(point pitch.Position, candidates []Candidate, radius float64) (string, bool) {
	i := nearest(point, candidates, radius)
	if i < 0 {
		return "", false
	}
	return candidates[i].ID, true
}

func nearest(point pitch.Position, candidates []Candidate, radius float64) int {
	best, found := radius, -1
	for i, c := range candidates {
		if d := pitch.Distance(point, c.Position); d < best {
			best, found = d, i
		}
	}
	return found
}

// Match binds a mover to the run it will follow.
type Match struct {
	MoverID string
	Motion  annotation.Motion
}

// Resolve walks motions in order and lets each claim the nearest unclaimed
// candidate within radius of its start point. A candidate is claimed at most
// once. The unclaimed candidates are returned alongside the matches; the
// input slice is not modified.
func Resolve(motions []annotation.Motion, candidates []Candidate, radius float64) ([]Match, []Candidate) {
	residual := make([]Candidate, len(candidates))
	copy(residual, candidates)

	var matches []Match
	for _, m := range motions {
		i := nearest(m.Start(), residual, radius)
		if i < 0 {
			continue
		}
		matches = append(matches, Match{MoverID: residual[i].ID, Motion: m})
		residual = append(residual[:i:i], residual[i+1:]...)
	}
	return matches, residual
}

// ResolveForBall returns the first motion whose start lies within radius
// of the ball.
func ResolveForBall(motions []annotation.Motion, ball pitch.Position, radius float64) (annotation.Motion, bool) {
	for _, m := range motions {
		if pitch.Distance(m.Start(), ball) < radius {
			return m, true
		}
	}
	return nil, false
}

// IDs lists the annotation ids consumed by matches.
func IDs(matches []Match) map[string]struct{} {
	ids := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		ids[m.Motion.ID()] = struct{}{}
	}
	return ids
}
