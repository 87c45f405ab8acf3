// Package formation holds the static formation tables: slot layouts, the
// counter-formation lookup, preset clubs and animation timings.
package formation

import (
	"errors"
	"fmt"

	"github.com/vladimirvolkov/tactics/internal/pitch"
)

var ErrUnknownFormation = errors.New("unknown formation")

type Name string

type Team string

const (
	Home Team = "home"
	Away Team = "away"
)

func (t Team) Valid() bool { return t == Home || t == Away }

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == Home {
		return Away
	}
	return Home
}

// Slot is one position of a formation, in field space.
type Slot struct {
	Position pitch.Position `json:"position"`
	Role     string         `json:"role"`
}

// Category groups formation names for pickers.
type Category struct {
	Name    string `json:"name"`
	Options []Name `json:"options"`
}

var Categories = []Category{
	{Name: "Classic Formations", Options: []Name{"4-4-2", "4-3-3", "3-5-2", "3-4-3", "4-2-3-1", "4-5-1"}},
	{Name: "Defensive Formations", Options: []Name{"5-4-1", "5-3-2", "4-1-4-1", "3-6-1"}},
	{Name: "Attacking Formations", Options: []Name{"4-3-3 False 9", "3-4-3 Diamond", "4-2-4", "3-3-4"}},
	{Name: "Modern / Hybrid Formations", Options: []Name{"4-3-2-1", "4-1-2-1-2", "3-2-4-1", "2-3-5", "WM"}},
	{Name: "Variations", Options: []Name{"4-3-3 Holding", "4-3-3 Flat", "4-3-3 Attacking", "3-5-2 Wide", "3-5-2 Narrow"}},
}

// Names lists every formation in picker order.
func Names() []Name {
	var out []Name
	for _, c := range Categories {
		out = append(out, c.Options...)
	}
	return out
}

func Known(name Name) bool {
	_, ok := layouts[name]
	return ok
}

// Slots returns the layout of name for team. Away layouts are the home
// layout mirrored across the halfway line (x' = 100 - x).
func Slots(name Name, team Team) ([]Slot, error) {
	home, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
	}
	out := make([]Slot, len(home))
	copy(out, home)
	if team == Away {
		for i := range out {
			out[i].Position.X = 100 - out[i].Position.X
		}
	}
	return out, nil
}

var counters = map[Name]Name{
	"4-4-2":           "3-5-2",
	"4-3-3":           "4-2-3-1",
	"3-5-2":           "4-3-3",
	"3-4-3":           "5-4-1",
	"4-2-3-1":         "4-3-3 Holding",
	"4-5-1":           "3-4-3",
	"5-4-1":           "4-2-4",
	"5-3-2":           "3-4-3 Diamond",
	"4-1-4-1":         "4-3-3 False 9",
	"3-6-1":           "4-4-2",
	"4-3-3 False 9":   "4-1-4-1",
	"3-4-3 Diamond":   "4-5-1",
	"4-2-4":           "5-4-1",
	"3-3-4":           "5-3-2",
	"4-3-2-1":         "3-5-2 Wide",
	"4-1-2-1-2":       "4-3-3 Flat",
	"3-2-4-1":         "4-2-3-1",
	"2-3-5":           "5-4-1",
	"WM":              "4-3-3",
	"4-3-3 Holding":   "4-2-3-1",
	"4-3-3 Flat":      "4-3-3 Attacking",
	"4-3-3 Attacking": "4-1-4-1",
	"3-5-2 Wide":      "4-4-2",
	"3-5-2 Narrow":    "4-3-3",
}

// Counter returns the formation the opposing side switches to when name is
// chosen. Not every formation has one.
func Counter(name Name) (Name, bool) {
	c, ok := counters[name]
	return c, ok
}

// Seat is a generated player before it is placed on a board.
type Seat struct {
	ID       string
	Team     Team
	Number   int
	Role     string
	Position pitch.Position
}

// Roster builds one side's players for name. Ids are "<team>-<role>-<index>"
// and shirt numbers run from 1.
func Roster(team Team, name Name) ([]Seat, error) {
	slots, err := Slots(name, team)
	if err != nil {
		return nil, err
	}
	seats := make([]Seat, len(slots))
	for i, s := range slots {
		seats[i] = Seat{
			ID:       fmt.Sprintf("%s-%s-%d", team, s.Role, i),
			Team:     team,
			Number:   i + 1,
			Role:     s.Role,
			Position: s.Position,
		}
	}
	return seats, nil
}
