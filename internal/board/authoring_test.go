package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

// at is a pointer over pitch position (x, y) with nothing under it.
func at(x, y float64) Pointer {
	return Pointer{Screen: pos(x*10, y*10)}
}

func onTarget(kind TargetKind, id string, p pitch.Position) Pointer {
	return Pointer{Screen: pos(p.X*10, p.Y*10), Target: Target{Kind: kind, ID: id}}
}

func onPlayer(t *testing.T, s *Session, id string) Pointer {
	t.Helper()
	return onTarget(TargetPlayer, id, pitch.ToPitch(mustPlayer(t, s.Active(), id).Position))
}

func click(s *Session, ev Pointer) {
	s.PointerDown(ev)
	s.PointerUp(ev)
}

func stroke(s *Session, evs ...Pointer) {
	s.PointerDown(evs[0])
	for _, ev := range evs[1:] {
		s.PointerMove(ev)
	}
	s.PointerUp(evs[len(evs)-1])
}

func onlyAnnotation(t *testing.T, s *Session) annotation.Annotation {
	t.Helper()
	all := s.Active().Annotations().All()
	require.Len(t, all, 1)
	return all[0]
}

func TestArrow_Ground(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolArrows)
	stroke(s, at(20, 10), at(30, 10), at(40, 10))

	l, ok := onlyAnnotation(t, s).(annotation.Line)
	require.True(t, ok)
	assert.Equal(t, annotation.Ground, l.PlayerID)
	assert.True(t, l.Dashed)
	assert.Equal(t, DefaultColor, l.Color())
	assertNear(t, pos(20, 10), l.Points[0])
	assertNear(t, pos(40, 10), l.Points[1])
	assert.Nil(t, s.View().Preview)
}

func TestArrow_TooShortIsDropped(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolArrows)
	stroke(s, at(20, 10), at(21.5, 10))
	assert.Zero(t, s.Active().Annotations().Len())
}

func TestArrow_EndpointsSnapToPlayers(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolArrows)
	stroke(s, at(33, 42), at(45, 30), at(46, 42))

	l := onlyAnnotation(t, s).(annotation.Line)
	assert.Equal(t, pitch.ToPitch(pos(30, 40)), l.Points[0], "LCM")
	assert.Equal(t, pitch.ToPitch(pos(45, 40)), l.Points[1], "ST")
}

func TestArrow_FromPlayerThenPlay(t *testing.T) {
	s, h := newSession(t)
	s.SetTool(ToolArrows)
	const id = "home-LCM-6"

	s.PointerDown(onPlayer(t, s, id))
	s.PointerMove(at(60, 60))
	preview := s.View().Preview
	require.NotNil(t, preview)
	require.Len(t, preview.Arrow, 2)
	s.PointerUp(at(60, 60))

	l := onlyAnnotation(t, s).(annotation.Line)
	assert.Equal(t, id, l.PlayerID)
	assert.Equal(t, pitch.ToPitch(pos(30, 40)), l.Points[0])
	assert.Empty(t, s.Active().Selected(), "a drag is not a click")

	require.True(t, s.Active().PlayMotion())
	h.Run(2*time.Second, frameStep)
	assertNear(t, pitch.ToField(pos(60, 60)), mustPlayer(t, s.Active(), id).Position)
}

func TestPath(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolPath)

	click(s, at(10, 10))
	click(s, at(20, 10))
	s.PointerMove(at(25, 12))
	preview := s.View().Preview
	require.NotNil(t, preview)
	assert.Len(t, preview.Path, 3)

	click(s, at(20.2, 10))
	p, ok := onlyAnnotation(t, s).(annotation.Path)
	require.True(t, ok)
	require.Len(t, p.Points, 2)
	assertNear(t, pos(10, 10), p.Points[0])
	assertNear(t, pos(20, 10), p.Points[1])
	assert.True(t, p.Dashed)
	assert.Nil(t, s.View().Preview)
}

func TestPath_SinglePointIsDiscarded(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolPath)
	click(s, at(10, 10))
	click(s, at(10.1, 10))
	assert.Zero(t, s.Active().Annotations().Len())
	assert.Nil(t, s.View().Preview)
}

func TestPath_PointsSnapToPlayers(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolPath)
	click(s, at(31, 40))
	click(s, at(70, 10))
	click(s, at(70, 10))

	p := onlyAnnotation(t, s).(annotation.Path)
	assert.Equal(t, pitch.ToPitch(pos(30, 40)), p.Points[0])
}

func TestCurve(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolCurve)

	stroke(s, at(10, 10), at(30, 10))
	preview := s.View().Preview
	require.NotNil(t, preview)
	require.Len(t, preview.Curve, 3)
	assertNear(t, pos(20, 10), preview.Curve[1])
	assert.Zero(t, s.Active().Annotations().Len())

	s.PointerMove(at(20, 20))
	s.PointerDown(at(20, 20))
	s.PointerUp(at(20, 20))

	c, ok := onlyAnnotation(t, s).(annotation.Curve)
	require.True(t, ok)
	assertNear(t, pos(10, 10), c.Points[0])
	assertNear(t, pos(20, 20), c.Points[1])
	assertNear(t, pos(30, 10), c.Points[2])
	assert.Nil(t, s.View().Preview)
}

func TestCurve_ShortChordIsDropped(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolCurve)
	stroke(s, at(10, 10), at(11, 10))
	assert.Nil(t, s.View().Preview)
	click(s, at(50, 10))
	assert.Zero(t, s.Active().Annotations().Len())
}

func TestFreehand(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolDraw)
	stroke(s, at(10, 10), at(12, 12), at(14, 13))

	f, ok := onlyAnnotation(t, s).(annotation.Freehand)
	require.True(t, ok)
	assert.Len(t, f.Points, 3)
	assert.False(t, f.Dashed)

	click(s, at(60, 60))
	assert.Equal(t, 1, s.Active().Annotations().Len(), "a dot is not a stroke")
}

func TestVector(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolVector)
	assert.Equal(t, annotation.ShapeSpace, s.shape)

	s.PointerDown(at(50, 10))
	s.PointerMove(at(55, 10))
	preview := s.View().Preview
	require.NotNil(t, preview)
	require.NotNil(t, preview.Vector)
	assert.InDelta(t, 7, preview.Vector.Size, 1e-6)
	s.PointerUp(at(55, 10))

	m, ok := onlyAnnotation(t, s).(annotation.Marker)
	require.True(t, ok)
	assert.Equal(t, annotation.ShapeSpace, m.Shape)
	assert.InDelta(t, 7, m.Size, 1e-6)
	assertNear(t, pos(50, 10), m.Position)
	assert.Equal(t, m.ID(), s.selectedMarker)

	stroke(s, at(80, 10), at(81, 10))
	assert.Equal(t, 1, s.Active().Annotations().Len())

	s.SetTool(ToolShape)
	assert.Equal(t, annotation.ShapeCross, s.shape)
}

func TestShape(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolShape)
	s.SetShape(annotation.ShapeCircle)
	s.SetShapeSize(5)
	s.SetColor("#FF0000")
	click(s, at(40, 40))

	m, ok := onlyAnnotation(t, s).(annotation.Marker)
	require.True(t, ok)
	assert.Equal(t, annotation.ShapeCircle, m.Shape)
	assert.Equal(t, 5.0, m.Size)
	assert.Equal(t, "#FF0000", m.Color())
	assert.False(t, m.Locked)
	assert.Equal(t, m.ID(), s.selectedMarker)

	s.SetTool(ToolMove)
	assert.Empty(t, s.selectedMarker)
}

func TestMarker_DragAndLock(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolShape)
	click(s, at(40, 40))
	id := s.selectedMarker
	s.SetTool(ToolMove)

	stroke(s, onTarget(TargetAnnotation, id, pos(40, 40)), at(42, 44), at(45, 45))
	m, _ := s.Active().Marker(id)
	assertNear(t, pos(45, 45), m.Position)
	assert.Equal(t, id, s.selectedMarker)

	require.True(t, s.ToggleMarkerLock())
	stroke(s, onTarget(TargetAnnotation, id, pos(45, 45)), at(60, 60))
	m, _ = s.Active().Marker(id)
	assertNear(t, pos(45, 45), m.Position)
}

func TestConnect(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolConnect)

	click(s, onPlayer(t, s, "home-LB-1"))
	preview := s.View().Preview
	require.NotNil(t, preview)
	assert.Equal(t, "home-LB-1", preview.ConnectFrom)

	click(s, onPlayer(t, s, "home-LM-5"))
	c, ok := onlyAnnotation(t, s).(annotation.Connection)
	require.True(t, ok)
	assert.Equal(t, [2]string{"home-LB-1", "home-LM-5"}, c.PlayerIDs)
	assert.Nil(t, s.View().Preview)

	click(s, onPlayer(t, s, "home-GK-0"))
	click(s, onPlayer(t, s, "home-GK-0"))
	assert.Nil(t, s.View().Preview, "same player twice cancels")

	click(s, onPlayer(t, s, "home-GK-0"))
	click(s, at(50, 2))
	assert.Nil(t, s.View().Preview, "empty space cancels")
	assert.Equal(t, 1, s.Active().Annotations().Len())
	assert.Empty(t, s.Active().Selected(), "connecting never selects")
}

func TestEraser(t *testing.T) {
	s, _ := newSession(t)
	b := s.Active()
	for _, id := range []string{"a", "b", "c"} {
		b.AddAnnotation(line(id, pos(1, 1), pos(9, 9)))
	}
	s.SetTool(ToolEraser)

	s.PointerDown(onTarget(TargetAnnotation, "a", pos(5, 5)))
	s.PointerMove(onTarget(TargetAnnotation, "b", pos(5, 5)))
	s.PointerUp(at(5, 5))
	s.PointerMove(onTarget(TargetAnnotation, "c", pos(5, 5)))

	assert.Equal(t, "c", onlyAnnotation(t, s).ID())
}

func TestMove_DragPlayer(t *testing.T) {
	s, _ := newSession(t)
	const id = "away-LW-8"
	stroke(s, onPlayer(t, s, id), at(60, 50), at(50, 70))

	assertNear(t, pitch.ToField(pos(50, 70)), mustPlayer(t, s.Active(), id).Position)
	assert.Empty(t, s.Active().Selected())
}

func TestMove_ClickSelects(t *testing.T) {
	s, _ := newSession(t)
	click(s, onPlayer(t, s, "home-RM-8"))
	assert.Equal(t, []string{"home-RM-8"}, s.Active().Selected())

	click(s, at(50, 2))
	assert.Empty(t, s.Active().Selected())
}

func TestMove_ClickPossessesThenPasses(t *testing.T) {
	s, h := newSession(t)
	require.NoError(t, s.SwitchBoard(2))
	b := s.Active()

	click(s, onPlayer(t, s, "home-CM-6"))
	assert.Equal(t, "home-CM-6", b.Possessor())

	click(s, onPlayer(t, s, "home-LW-8"))
	assert.Empty(t, b.Possessor())
	require.Len(t, b.Passes(), 1)

	h.Run(2*time.Second, frameStep)
	assert.Equal(t, "home-LW-8", b.Possessor())
}

func TestMove_EmptyClickDropsBall(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.SwitchBoard(2))
	b := s.Active()
	click(s, onPlayer(t, s, "home-RB-4"))
	require.Equal(t, "home-RB-4", b.Possessor())

	click(s, at(70, 2))
	assert.Empty(t, b.Possessor())
	assert.Empty(t, b.Selected())
}

func TestMove_BallDropGivesPossession(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.SwitchBoard(2))
	b := s.Active()
	lw := pitch.ToPitch(pos(45, 25))

	stroke(s,
		onTarget(TargetBall, BallID, pitch.ToPitch(CenterSpot)),
		at(47, 35),
		at(lw.X+1, lw.Y+1),
	)
	assert.Equal(t, "home-LW-8", b.Possessor())
	assert.Equal(t, pos(45, 29.5), mustBall(t, b).Position)
}

func TestMove_HeldBallCannotBeDragged(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.SwitchBoard(2))
	b := s.Active()
	require.NoError(t, b.GiveBall("home-CM-6"))
	held := mustBall(t, b).Position

	stroke(s, onTarget(TargetBall, BallID, pitch.ToPitch(held)), at(80, 80))
	assert.Equal(t, held, mustBall(t, b).Position)
}

func TestNoteTool(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolNote)
	click(s, at(30, 20))

	n, ok := s.CommitNote("Switch play")
	require.True(t, ok)
	assertNear(t, pos(30, 20), n.Position)
	assert.Nil(t, s.pendingNote)

	stroke(s, onTarget(TargetNote, n.ID, pos(30, 20)), at(35, 25))
	assertNear(t, pos(35, 25), s.Active().Notes()[0].Position)
}

func TestVerticalOrientation(t *testing.T) {
	s, _ := newSession(t)
	s.SetViewport(viewport, pitch.Vertical)
	s.SetTool(ToolArrows)
	stroke(s, Pointer{Screen: pos(100, 200)}, Pointer{Screen: pos(100, 600)})

	l := onlyAnnotation(t, s).(annotation.Line)
	assertNear(t, pos(20, 10), l.Points[0])
	assertNear(t, pos(60, 10), l.Points[1])
}

func TestSetTool_IgnoresUnknown(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolDraw)
	s.SetTool("lasso")
	assert.Equal(t, ToolDraw, s.Tool())
}

func TestSetTool_DropsHalfFinishedGesture(t *testing.T) {
	s, _ := newSession(t)
	s.SetTool(ToolPath)
	click(s, at(10, 10))
	click(s, at(20, 10))
	s.SetTool(ToolPath)
	click(s, at(20, 10))
	click(s, at(20.1, 10))
	assert.Zero(t, s.Active().Annotations().Len())
}
