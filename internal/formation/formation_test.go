package formation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirvolkov/tactics/internal/pitch"
)

func TestSlots_AwayMirrorsHome(t *testing.T) {
	home, err := Slots("4-4-2", Home)
	require.NoError(t, err)
	away, err := Slots("4-4-2", Away)
	require.NoError(t, err)

	require.Len(t, away, len(home))
	for i := range home {
		assert.Equal(t, 100-home[i].Position.X, away[i].Position.X)
		assert.Equal(t, home[i].Position.Y, away[i].Position.Y)
		assert.Equal(t, home[i].Role, away[i].Role)
	}
	assert.Equal(t, pitch.Position{X: 95, Y: 50}, away[0].Position)
}

func TestSlots_DoesNotAliasTable(t *testing.T) {
	away, err := Slots("4-3-3", Away)
	require.NoError(t, err)
	away[0].Position.X = -1

	home, err := Slots("4-3-3", Home)
	require.NoError(t, err)
	assert.Equal(t, 5.0, home[0].Position.X)
}

func TestSlots_Unknown(t *testing.T) {
	_, err := Slots("1-1-8", Home)
	assert.ErrorIs(t, err, ErrUnknownFormation)

	_, err = Roster(Away, "nonsense")
	assert.ErrorIs(t, err, ErrUnknownFormation)
}

func TestEveryFormationHasElevenSlots(t *testing.T) {
	names := Names()
	assert.Len(t, names, 24)
	for _, n := range names {
		slots, err := Slots(n, Home)
		require.NoError(t, err, n)
		assert.Len(t, slots, 11, n)
		assert.Equal(t, "GK", slots[0].Role, n)
	}
	assert.Len(t, layouts, len(names))
}

func TestCounter(t *testing.T) {
	c, ok := Counter("4-4-2")
	require.True(t, ok)
	assert.Equal(t, Name("3-5-2"), c)

	_, ok = Counter("not-a-formation")
	assert.False(t, ok)

	for from, to := range counters {
		assert.True(t, Known(from), from)
		assert.True(t, Known(to), to)
	}
}

func TestRoster(t *testing.T) {
	seats, err := Roster(Away, "4-3-3")
	require.NoError(t, err)
	require.Len(t, seats, 11)

	assert.Equal(t, "away-GK-0", seats[0].ID)
	assert.Equal(t, 1, seats[0].Number)
	assert.Equal(t, "away-ST-9", seats[9].ID)
	assert.Equal(t, 10, seats[9].Number)
	assert.Equal(t, pitch.Position{X: 52, Y: 50}, seats[9].Position)

	seen := map[string]bool{}
	for _, s := range seats {
		assert.False(t, seen[s.ID], s.ID)
		seen[s.ID] = true
		assert.Equal(t, Away, s.Team)
	}
}

func TestClubByName(t *testing.T) {
	c, ok := ClubByName("Chelsea")
	require.True(t, ok)
	assert.Equal(t, "#034694", c.Color)
	assert.Equal(t, Name("3-5-2"), c.Formation)

	_, ok = ClubByName("Nowhere FC")
	assert.False(t, ok)

	for _, l := range Leagues {
		for _, c := range l.Clubs {
			assert.True(t, Known(c.Formation), c.Name)
		}
	}
}

func TestSpeedDuration(t *testing.T) {
	tests := []struct {
		speed Speed
		want  time.Duration
	}{
		{Slow, 2400 * time.Millisecond},
		{Normal, 1400 * time.Millisecond},
		{Fast, 800 * time.Millisecond},
		{Instant, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.speed), func(t *testing.T) {
			d, err := tt.speed.Duration()
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}

	_, err := Speed("ludicrous").Duration()
	assert.Error(t, err)
}

func TestInsightFor(t *testing.T) {
	assert.Equal(t, "Structured / Balanced", InsightFor("4-4-2").Style)
	assert.Equal(t, defaultInsight, InsightFor("WM"))
}

func TestTeam(t *testing.T) {
	assert.Equal(t, Away, Home.Opponent())
	assert.Equal(t, Home, Away.Opponent())
	assert.False(t, Team("spectators").Valid())
}
