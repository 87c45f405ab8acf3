package board

import (
	"fmt"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/motion"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

// passColor is the stroke of recorded pass traces.
const passColor = "#FBBF24"

// PlayMotion sends every player that starts a run along it. Runs are
// consumed before the first frame. It reports whether anything moved; with
// no match the board is left exactly as it was.
func (b *Board) PlayMotion() bool {
	matches, _ := motion.Resolve(b.annotations.Motions(), b.candidates(), motion.SnapRadius)
	if len(matches) == 0 {
		return false
	}
	b.annotations.FilterOut(motion.IDs(matches))

	d, _ := b.speed.Duration()
	pb := motion.Playback{Moves: matches, Apply: b.setPosition, OnDone: b.touch}
	b.playback.Start(d, pb.Step)
	b.log.Debug().Int("movers", len(matches)).Dur("duration", d).Msg("playback started")
	b.touch()
	return true
}

// PlayBallMotion sends the ball along the first run that starts near it.
// The ball is dropped by whoever held it.
func (b *Board) PlayBallMotion() bool {
	if b.ball == nil {
		return false
	}
	m, ok := motion.ResolveForBall(b.annotations.Motions(), pitch.ToPitch(b.ball.Position), motion.BallRadius)
	if !ok {
		return false
	}
	b.annotations.RemoveByID(m.ID())
	b.possessor = ""

	d, _ := b.speed.Duration()
	pb := motion.Playback{
		Moves:  []motion.Match{{MoverID: b.ball.ID, Motion: m}},
		Apply:  b.setPosition,
		OnDone: b.touch,
	}
	b.ballRun.Start(d, pb.Step)
	b.log.Debug().Str("annotation", m.ID()).Msg("ball playback started")
	b.touch()
	return true
}

// Pass plays the ball from its holder to toID along a straight line. The
// holder loses the ball at once and toID receives it when it arrives.
func (b *Board) Pass(toID string) error {
	if b.ball == nil {
		return ErrNoBall
	}
	if b.possessor == "" {
		return ErrNoPossession
	}
	from, ok := b.player(b.possessor)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, b.possessor)
	}
	to, ok := b.player(toID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, toID)
	}
	if to.ID == from.ID {
		return nil
	}

	start := pitch.ToPitch(b.ball.Position)
	end := pitch.ToPitch(pitch.Position{X: to.Position.X, Y: to.Position.Y + PossessionOffset})
	b.passes = append(b.passes, PassAction{
		ID:           b.newID(),
		FromPlayerID: from.ID,
		ToPlayerID:   to.ID,
		FromPos:      from.Position,
		ToPos:        to.Position,
	})
	b.annotations.Append(annotation.PassTrace{
		Base:   annotation.Base{AnnotationID: b.newID(), Stroke: passColor, Dashed: true},
		Points: [2]pitch.Position{start, end},
	})
	b.possessor = ""
	b.selected = nil

	run := annotation.Line{Points: [2]pitch.Position{start, end}}
	d, _ := b.speed.Duration()
	pb := motion.Playback{
		Moves: []motion.Match{{MoverID: b.ball.ID, Motion: run}},
		Apply: b.setPosition,
		OnDone: func() {
			if b.possessor == "" {
				_ = b.GiveBall(toID)
			}
		},
	}
	b.ballRun.Start(d, pb.Step)
	b.log.Debug().Str("from", from.ID).Str("to", to.ID).Msg("pass started")
	b.touch()
	return nil
}

// SetFormation eases team into name. When the move completes each player
// takes the role and home slot it landed on.
func (b *Board) SetFormation(team formation.Team, name formation.Name) error {
	side, ok := b.sides[team]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	slots, err := formation.Slots(name, team)
	if err != nil {
		return err
	}
	if team == formation.Home {
		b.cancelCounter()
	}
	side.Formation = name
	b.animateFormation(team, name, slots)
	b.touch()
	return nil
}

func (b *Board) animateFormation(team formation.Team, name formation.Name, slots []formation.Slot) {
	var (
		movers []*Player
		legs   []motion.Leg
	)
	for _, p := range b.players {
		if p.Team != team {
			continue
		}
		if len(movers) >= len(slots) {
			break
		}
		legs = append(legs, motion.Leg{ID: p.ID, From: p.Position, To: slots[len(movers)].Position})
		movers = append(movers, p)
	}

	tw := motion.Tween{
		Legs:  legs,
		Apply: b.setPosition,
		OnDone: func() {
			for i, p := range movers {
				p.Role = slots[i].Role
				p.InitialPosition = p.Position
			}
			b.touch()
			if b.autoCounter && team == formation.Home {
				b.scheduleCounter(name)
			}
		},
	}
	b.formationRuns[team].Start(formation.AnimationDuration, tw.Step)
	b.log.Debug().Str("team", string(team)).Str("formation", string(name)).Msg("formation change started")
}

// scheduleCounter lines up the away side's answer to a home formation.
func (b *Board) scheduleCounter(home formation.Name) {
	counter, ok := formation.Counter(home)
	if !ok {
		return
	}
	b.counterTimer = b.host.AfterFunc(formation.CounterDelay, func() {
		b.counterTimer = 0
		slots, err := formation.Slots(counter, formation.Away)
		if err != nil {
			b.log.Error().Err(err).Str("formation", string(counter)).Msg("counter formation")
			return
		}
		b.log.Info().Str("home", string(home)).Str("away", string(counter)).Msg("away side adapting")
		b.sides[formation.Away].Formation = counter
		b.adapting = true
		b.animateFormation(formation.Away, counter, slots)
		b.flagTimer = b.host.AfterFunc(formation.CounterFlag, func() {
			b.flagTimer = 0
			b.adapting = false
			b.touch()
		})
		b.touch()
	})
}

func (b *Board) cancelCounter() {
	if b.counterTimer != 0 {
		b.host.CancelTimer(b.counterTimer)
		b.counterTimer = 0
	}
	if b.flagTimer != 0 {
		b.host.CancelTimer(b.flagTimer)
		b.flagTimer = 0
	}
	b.adapting = false
}

// CancelRuns stops every run and pending timer on the board. Positions
// already written stay where they are.
func (b *Board) CancelRuns() {
	b.playback.Cancel()
	b.ballRun.Cancel()
	for _, s := range b.formationRuns {
		s.Cancel()
	}
	b.cancelCounter()
	b.touch()
}

// Reset walks every player back to their home slot and the ball back to
// the centre spot. Drawings, notes, passes and the selection are cleared
// once everyone has arrived.
func (b *Board) Reset() {
	b.CancelRuns()
	b.possessor = ""

	tw := motion.Tween{
		Apply: b.setPosition,
		OnDone: func() {
			b.annotations.Clear()
			b.notes = nil
			b.selected = nil
			b.passes = nil
			b.possessor = ""
			b.touch()
		},
	}
	for _, p := range b.players {
		tw.Legs = append(tw.Legs, motion.Leg{ID: p.ID, From: p.Position, To: p.InitialPosition})
	}
	if b.ball != nil {
		tw.Legs = append(tw.Legs, motion.Leg{ID: b.ball.ID, From: b.ball.Position, To: CenterSpot})
	}
	b.playback.Start(formation.ResetDuration, tw.Step)
	b.log.Debug().Msg("reset started")
}
