package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/board"
	"github.com/vladimirvolkov/tactics/internal/frame/frametest"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Memory, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("tactic-%d", n)
	}
	return s
}

func sampleTactic(t *testing.T, name string) board.Tactic {
	t.Helper()
	b, err := board.New(frametest.New(), board.Boards[1], zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.GiveBall("home-ST-9"))
	b.AddAnnotation(annotation.Line{
		Base:     annotation.Base{AnnotationID: "run-1", Stroke: "#FFFFFF", Dashed: true},
		PlayerID: "home-ST-9",
		Points:   [2]pitch.Position{{X: 48.2, Y: 50}, {X: 80, Y: 30}},
	})
	b.AddAnnotation(annotation.Marker{
		Base:     annotation.Base{AnnotationID: "zone-1", Stroke: "#FF0000"},
		Shape:    annotation.ShapeSpace,
		Position: pitch.Position{X: 70, Y: 40},
		Size:     9,
		Locked:   true,
	})
	return b.Tactic(name)
}

func TestSaveAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	in := sampleTactic(t, "  False nine  ")

	saved, err := s.Save(ctx, "coach", in)
	require.NoError(t, err)
	assert.Equal(t, "tactic-1", saved.ID)
	assert.Equal(t, "False nine", saved.Name)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	require.Len(t, got.Drawings, 2)
	assert.Equal(t, annotation.KindLine, got.Drawings[0].Kind())
	m, ok := got.Drawings[1].(annotation.Marker)
	require.True(t, ok)
	assert.True(t, m.Locked)
	require.NotNil(t, got.Ball)
	assert.Equal(t, board.BallID, got.Ball.ID)
}

func TestSave_UpdateKeepsID(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "coach", sampleTactic(t, "Press"))
	require.NoError(t, err)
	var created Tactic
	require.NoError(t, s.db.First(&created, "id = ?", first.ID).Error)

	first.Name = "High press"
	first.Drawings = nil
	second, err := s.Save(ctx, "assistant", first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var row Tactic
	require.NoError(t, s.db.First(&row, "id = ?", first.ID).Error)
	assert.Equal(t, "High press", row.Name)
	assert.Equal(t, "assistant", row.Author)
	assert.True(t, created.CreatedAt.Equal(row.CreatedAt))

	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Drawings)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSave_RequiresName(t *testing.T) {
	s := openStore(t)
	_, err := s.Save(context.Background(), "coach", sampleTactic(t, "   "))
	assert.ErrorIs(t, err, ErrNoName)
}

func TestList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Low block", "Counter", "Overload"} {
		_, err := s.Save(ctx, "coach", sampleTactic(t, name))
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	var names []string
	for _, sum := range list {
		names = append(names, sum.Name)
		assert.Equal(t, "coach", sum.Author)
		assert.False(t, sum.UpdatedAt.IsZero())
	}
	assert.ElementsMatch(t, []string{"Low block", "Counter", "Overload"}, names)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	saved, err := s.Save(ctx, "coach", sampleTactic(t, "Gone soon"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, saved.ID))
	_, err = s.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, saved.ID), ErrNotFound)
}

func TestGet_Missing(t *testing.T) {
	s := openStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
