// Package board owns the per-board state of a tactics session: the roster,
// the ball and its possessor, drawings, notes and the animation runs that
// move players around.
//
// Nothing in this package is safe for concurrent use. A Board and its
// Session are driven from the goroutine that runs their frame.Host.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/frame"
	"github.com/vladimirvolkov/tactics/internal/motion"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

var (
	ErrNoSuchPlayer = errors.New("no such player")
	ErrNoBall       = errors.New("board has no ball")
	ErrNoPossession = errors.New("nobody has the ball")
	ErrUnknownClub  = errors.New("unknown club")
	ErrUnknownTeam  = errors.New("unknown team")
)

// PossessionOffset is how far below its holder the ball sits, in field
// units.
const PossessionOffset = 4.5

const BallID = "ball-1"

// CenterSpot is where a reset returns the ball.
var CenterSpot = pitch.Position{X: 50, Y: 50}

type Player struct {
	ID              string         `json:"id"`
	Team            formation.Team `json:"team"`
	Number          int            `json:"number"`
	Role            string         `json:"role"`
	Position        pitch.Position `json:"position"`
	InitialPosition pitch.Position `json:"initialPosition"`
	Name            string         `json:"name,omitempty"`
}

type Ball struct {
	ID       string         `json:"id"`
	Position pitch.Position `json:"position"`
}

// PassAction records one completed or in-flight pass.
type PassAction struct {
	ID           string         `json:"id"`
	FromPlayerID string         `json:"fromPlayerId"`
	ToPlayerID   string         `json:"toPlayerId"`
	FromPos      pitch.Position `json:"fromPos"`
	ToPos        pitch.Position `json:"toPos"`
}

// Side is one team's presentation on a board.
type Side struct {
	Color     string         `json:"color"`
	Formation formation.Name `json:"formation"`
	Club      string         `json:"club"`
}

// Config describes a board when it is created.
type Config struct {
	Number int
	Home   Side
	Away   Side
	// WithBall places a ball on the centre spot.
	WithBall bool
	// AutoCounter makes the away side answer every home formation change.
	AutoCounter bool
}

type Board struct {
	number int
	host   frame.Host
	log    zerolog.Logger
	newID  func() string

	players     []*Player
	ball        *Ball
	annotations *annotation.Store
	notes       []annotation.Note
	selected    []string
	possessor   string
	sides       map[formation.Team]*Side
	speed       formation.Speed
	passes      []PassAction
	autoCounter bool
	adapting    bool

	playback      *motion.Scheduler
	ballRun       *motion.Scheduler
	formationRuns map[formation.Team]*motion.Scheduler
	counterTimer  frame.Handle
	flagTimer     frame.Handle

	version uint64
}

// New builds a board with both sides lined up in their formations.
func New(host frame.Host, cfg Config, log zerolog.Logger) (*Board, error) {
	log = log.With().Int("board", cfg.Number).Logger()
	b := &Board{
		number:      cfg.Number,
		host:        host,
		log:         log,
		newID:       uuid.NewString,
		annotations: annotation.NewStore(),
		sides: map[formation.Team]*Side{
			formation.Home: {Color: cfg.Home.Color, Formation: cfg.Home.Formation, Club: cfg.Home.Club},
			formation.Away: {Color: cfg.Away.Color, Formation: cfg.Away.Formation, Club: cfg.Away.Club},
		},
		speed:       formation.DefaultSpeed,
		autoCounter: cfg.AutoCounter,
		playback:    motion.NewScheduler(host, "playback", log),
		ballRun:     motion.NewScheduler(host, "ball", log),
		formationRuns: map[formation.Team]*motion.Scheduler{
			formation.Home: motion.NewScheduler(host, "formation-home", log),
			formation.Away: motion.NewScheduler(host, "formation-away", log),
		},
	}
	for _, team := range []formation.Team{formation.Home, formation.Away} {
		seats, err := formation.Roster(team, b.sides[team].Formation)
		if err != nil {
			return nil, fmt.Errorf("board %d %s roster: %w", cfg.Number, team, err)
		}
		for _, s := range seats {
			b.players = append(b.players, &Player{
				ID:              s.ID,
				Team:            s.Team,
				Number:          s.Number,
				Role:            s.Role,
				Position:        s.Position,
				InitialPosition: s.Position,
			})
		}
	}
	if cfg.WithBall {
		b.ball = &Ball{ID: BallID, Position: CenterSpot}
	}
	return b, nil
}

func (b *Board) Number() int { return b.number }

func (b *Board) Version() uint64 { return b.version }

func (b *Board) touch() { b.version++ }

func (b *Board) player(id string) (*Player, bool) {
	for _, p := range b.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Player returns a copy of the player with id.
func (b *Board) Player(id string) (Player, bool) {
	p, ok := b.player(id)
	if !ok {
		return Player{}, false
	}
	return *p, true
}

// Players returns a copy of the roster in board order.
func (b *Board) Players() []Player {
	out := make([]Player, len(b.players))
	for i, p := range b.players {
		out[i] = *p
	}
	return out
}

// Ball returns a copy of the ball, if the board has one.
func (b *Board) Ball() (Ball, bool) {
	if b.ball == nil {
		return Ball{}, false
	}
	return *b.ball, true
}

func (b *Board) Possessor() string { return b.possessor }

func (b *Board) Selected() []string { return append([]string(nil), b.selected...) }

func (b *Board) Annotations() *annotation.Store { return b.annotations }

func (b *Board) Notes() []annotation.Note { return append([]annotation.Note(nil), b.notes...) }

func (b *Board) Side(team formation.Team) Side { return *b.sides[team] }

func (b *Board) Speed() formation.Speed { return b.speed }

func (b *Board) Passes() []PassAction { return append([]PassAction(nil), b.passes...) }

// Adapting reports whether the away side is answering a home formation
// change.
func (b *Board) Adapting() bool { return b.adapting }

// Animating reports whether any run is in flight on this board.
func (b *Board) Animating() bool {
	if b.playback.Running() || b.ballRun.Running() {
		return true
	}
	for _, s := range b.formationRuns {
		if s.Running() {
			return true
		}
	}
	return false
}

// candidates projects the roster into pitch space in board order.
func (b *Board) candidates() []motion.Candidate {
	out := make([]motion.Candidate, len(b.players))
	for i, p := range b.players {
		out[i] = motion.Candidate{ID: p.ID, Position: pitch.ToPitch(p.Position)}
	}
	return out
}

// setPosition is the single write path for mover positions. Moving the
// possessor drags the ball along with it.
func (b *Board) setPosition(id string, field pitch.Position) {
	if b.ball != nil && id == b.ball.ID {
		b.ball.Position = field
		b.touch()
		return
	}
	p, ok := b.player(id)
	if !ok {
		return
	}
	p.Position = field
	if b.ball != nil && id == b.possessor {
		b.ball.Position = pitch.Position{X: field.X, Y: field.Y + PossessionOffset}
	}
	b.touch()
}

// MovePlayer places a player directly, as a drag does.
func (b *Board) MovePlayer(id string, field pitch.Position) error {
	if _, ok := b.player(id); !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, id)
	}
	b.setPosition(id, field)
	return nil
}

// MoveBall places the ball directly. Moving a held ball drops it first.
func (b *Board) MoveBall(field pitch.Position) error {
	if b.ball == nil {
		return ErrNoBall
	}
	b.possessor = ""
	b.setPosition(b.ball.ID, field)
	return nil
}

// GiveBall hands the ball to id. Giving it to the current holder takes it
// away again and clears the selection.
func (b *Board) GiveBall(id string) error {
	if b.ball == nil {
		return ErrNoBall
	}
	p, ok := b.player(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, id)
	}
	if b.possessor == id {
		b.possessor = ""
		b.selected = nil
		b.touch()
		return nil
	}
	b.possessor = id
	b.ball.Position = pitch.Position{X: p.Position.X, Y: p.Position.Y + PossessionOffset}
	b.selected = []string{id}
	b.touch()
	return nil
}

// SelectPlayer is what a click on a player does: on a board with a ball it
// toggles possession, otherwise it toggles an exclusive selection.
func (b *Board) SelectPlayer(id string) error {
	if b.ball != nil {
		return b.GiveBall(id)
	}
	if _, ok := b.player(id); !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, id)
	}
	if b.isSelected(id) {
		b.selected = nil
	} else {
		b.selected = []string{id}
	}
	b.touch()
	return nil
}

func (b *Board) isSelected(id string) bool {
	for _, s := range b.selected {
		if s == id {
			return true
		}
	}
	return false
}

// Group names a bulk selection.
type Group string

const (
	GroupAll  Group = "all"
	GroupHome Group = "home"
	GroupAway Group = "away"
	GroupNone Group = "none"
)

func (b *Board) SelectGroup(g Group) {
	b.selected = nil
	for _, p := range b.players {
		switch {
		case g == GroupAll,
			g == GroupHome && p.Team == formation.Home,
			g == GroupAway && p.Team == formation.Away:
			b.selected = append(b.selected, p.ID)
		}
	}
	b.touch()
}

// ClearSelection deselects everyone and drops the ball where it is.
func (b *Board) ClearSelection() {
	b.selected = nil
	b.possessor = ""
	b.touch()
}

func (b *Board) SetSpeed(s formation.Speed) error {
	if _, err := s.Duration(); err != nil {
		return err
	}
	b.speed = s
	b.touch()
	return nil
}

// SetPlayerNumber parses input as a shirt number. Anything that is not a
// positive integer is ignored and the old number kept; the result reports
// whether the number changed.
func (b *Board) SetPlayerNumber(id, input string) bool {
	p, ok := b.player(id)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return false
	}
	p.Number = n
	b.touch()
	return true
}

func (b *Board) SetPlayerName(id, name string) error {
	p, ok := b.player(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchPlayer, id)
	}
	p.Name = strings.TrimSpace(name)
	b.touch()
	return nil
}

func (b *Board) SetColor(team formation.Team, color string) error {
	s, ok := b.sides[team]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	s.Color = color
	b.touch()
	return nil
}

// SelectClub dresses team in a preset club's colour and moves it into the
// club's formation.
func (b *Board) SelectClub(team formation.Team, name string) error {
	club, ok := formation.ClubByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClub, name)
	}
	if err := b.SetColor(team, club.Color); err != nil {
		return err
	}
	b.sides[team].Club = club.Name
	return b.SetFormation(team, club.Formation)
}
