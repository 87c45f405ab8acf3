package motion

import "github.com/vladimirvolkov/tactics/internal/pitch"

// ApplyFunc writes a mover's new field position.
type ApplyFunc func(moverID string, field pitch.Position)

// Playback moves every matched mover along its run. Its Step method is a
// StepFunc.
type Playback struct {
	Moves  []Match
	Apply  ApplyFunc
	OnDone func()
}

func (p Playback) Step(t float64, done bool) {
	for _, m := range p.Moves {
		p.Apply(m.MoverID, pitch.ToField(m.Motion.PointAt(t)))
	}
	if done && p.OnDone != nil {
		p.OnDone()
	}
}

// Leg is one mover's straight-line move within a Tween.
type Leg struct {
	ID       string
	From, To pitch.Position
}

// Tween moves each mover in a straight line from its From position to its
// To position. It backs formation changes and resets.
type Tween struct {
	Legs   []Leg
	Apply  ApplyFunc
	OnDone func()
}

func (tw Tween) Step(t float64, done bool) {
	for _, l := range tw.Legs {
		tw.Apply(l.ID, pitch.Lerp(l.From, l.To, t))
	}
	if done && tw.OnDone != nil {
		tw.OnDone()
	}
}
