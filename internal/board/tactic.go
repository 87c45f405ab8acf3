package board

import (
	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/formation"
)

// CustomClub is the club name of a side that is not a preset.
const CustomClub = "Custom"

// Tactic is the saved form of a board.
type Tactic struct {
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name"`
	Players          []Player          `json:"players"`
	HomeColor        string            `json:"homeColor"`
	AwayColor        string            `json:"awayColor"`
	HomeFormation    formation.Name    `json:"homeFormation"`
	AwayFormation    formation.Name    `json:"awayFormation"`
	Drawings         annotation.List   `json:"drawings"`
	Notes            []annotation.Note `json:"notes,omitempty"`
	SelectedHomeTeam string            `json:"selectedHomeTeam"`
	SelectedAwayTeam string            `json:"selectedAwayTeam"`
	Ball             *Ball             `json:"ball,omitempty"`
	PassSequence     []PassAction      `json:"passSequence,omitempty"`
}

// Tactic snapshots the board.
func (b *Board) Tactic(name string) Tactic {
	home, away := b.sides[formation.Home], b.sides[formation.Away]
	t := Tactic{
		Name:             name,
		Players:          b.Players(),
		HomeColor:        home.Color,
		AwayColor:        away.Color,
		HomeFormation:    home.Formation,
		AwayFormation:    away.Formation,
		Drawings:         b.annotations.All(),
		Notes:            b.Notes(),
		SelectedHomeTeam: clubOrCustom(home.Club),
		SelectedAwayTeam: clubOrCustom(away.Club),
		PassSequence:     b.Passes(),
	}
	if ball, ok := b.Ball(); ok {
		t.Ball = &ball
	}
	return t
}

func clubOrCustom(club string) string {
	if club == "" {
		return CustomClub
	}
	return club
}

// Install replaces the board's state with t. Runs in flight are stopped
// and possession and selection are cleared. Nothing in t is validated
// beyond what decoding already checked.
func (b *Board) Install(t Tactic) {
	b.CancelRuns()

	b.players = make([]*Player, len(t.Players))
	for i := range t.Players {
		p := t.Players[i]
		b.players[i] = &p
	}
	home, away := b.sides[formation.Home], b.sides[formation.Away]
	home.Color, away.Color = t.HomeColor, t.AwayColor
	home.Formation, away.Formation = t.HomeFormation, t.AwayFormation
	home.Club, away.Club = installedClub(t.SelectedHomeTeam), installedClub(t.SelectedAwayTeam)

	b.annotations.Reset(t.Drawings)
	b.notes = append([]annotation.Note(nil), t.Notes...)
	b.passes = append([]PassAction(nil), t.PassSequence...)
	if t.Ball != nil {
		ball := *t.Ball
		b.ball = &ball
	}
	b.possessor = ""
	b.selected = nil
	b.log.Info().Str("tactic", t.Name).Int("players", len(t.Players)).Int("drawings", len(t.Drawings)).Msg("tactic installed")
	b.touch()
}

func installedClub(name string) string {
	if name == CustomClub {
		return ""
	}
	return name
}
