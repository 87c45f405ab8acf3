package board

import (
	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/motion"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

type Tool string

const (
	ToolMove    Tool = "move"
	ToolArrows  Tool = "arrows"
	ToolPath    Tool = "path"
	ToolCurve   Tool = "curve"
	ToolDraw    Tool = "draw"
	ToolConnect Tool = "connect"
	ToolEraser  Tool = "eraser"
	ToolNote    Tool = "note"
	ToolShape   Tool = "shape"
	ToolVector  Tool = "vector"
)

func (t Tool) Valid() bool {
	switch t {
	case ToolMove, ToolArrows, ToolPath, ToolCurve, ToolDraw,
		ToolConnect, ToolEraser, ToolNote, ToolShape, ToolVector:
		return true
	}
	return false
}

const (
	// MinStrokeLength is the shortest arrow or curve chord that is kept.
	MinStrokeLength = 2.0
	// PathCloseRadius finishes a path when a click lands this close to
	// its last point.
	PathCloseRadius = 0.5
	// VectorScale converts drag distance into zone size.
	VectorScale = 1.4
	// MinVectorSize is the smallest zone a vector drag creates.
	MinVectorSize = 2.0
)

type TargetKind string

const (
	TargetNone       TargetKind = ""
	TargetPlayer     TargetKind = "player"
	TargetBall       TargetKind = "ball"
	TargetAnnotation TargetKind = "annotation"
	TargetNote       TargetKind = "note"
)

// Target is what the client found under the pointer.
type Target struct {
	Kind TargetKind `json:"kind,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// Pointer is one pointer event in screen coordinates.
type Pointer struct {
	Screen pitch.Position `json:"screen"`
	Target Target         `json:"target"`
}

// gesture is the in-progress state of the pointer. All points are in
// pitch space.
type gesture struct {
	down       bool
	moved      bool
	downTarget Target

	dragPlayer string
	dragBall   bool
	dragMarker string
	dragNote   string
	erasing    bool

	source      string
	arrowStart  *pitch.Position
	arrowEnd    *pitch.Position
	pathPoints  []pitch.Position
	pathPreview *pitch.Position

	curveStart, curveEnd, curveControl *pitch.Position
	bending                            bool

	vectorStart *pitch.Position
	vectorSize  float64

	freehand []pitch.Position
	drawing  bool
}

func ptr(p pitch.Position) *pitch.Position { return &p }

func (s *Session) Tool() Tool { return s.tool }

// SetTool switches the authoring mode. Half-finished gestures are dropped.
func (s *Session) SetTool(t Tool) {
	if !t.Valid() {
		return
	}
	s.tool = t
	s.gesture = gesture{}
	switch t {
	case ToolVector:
		s.shape = annotation.ShapeSpace
	case ToolShape:
		if s.shape == annotation.ShapeSpace {
			s.shape = annotation.ShapeCross
		}
	}
	if t != ToolShape && t != ToolVector {
		s.selectedMarker = ""
	}
	if t == ToolNote {
		s.pendingNote = ptr(pitch.Position{X: 50, Y: 50})
	} else {
		s.pendingNote = nil
	}
	s.touch()
}

// snap moves p onto the nearest player within the snap radius.
func (s *Session) snap(p pitch.Position) pitch.Position {
	cands := s.Active().candidates()
	if id, ok := motion.FindNearest(p, cands, motion.SnapRadius); ok {
		for _, c := range cands {
			if c.ID == id {
				return c.Position
			}
		}
	}
	return p
}

func (s *Session) playerPitch(id string) (pitch.Position, bool) {
	p, ok := s.Active().player(id)
	if !ok {
		return pitch.Position{}, false
	}
	return pitch.ToPitch(p.Position), true
}

func (s *Session) newBase(dashed bool) annotation.Base {
	return annotation.Base{AnnotationID: s.Active().newID(), Stroke: s.color, Dashed: dashed}
}

func (s *Session) PointerDown(ev Pointer) {
	b := s.Active()
	pos := s.mapper.ScreenToPitch(ev.Screen)
	g := &s.gesture
	g.down, g.moved, g.downTarget = true, false, ev.Target
	defer s.touch()

	if s.tool == ToolEraser {
		g.erasing = true
		if ev.Target.Kind == TargetAnnotation {
			s.RemoveAnnotation(ev.Target.ID)
		}
		return
	}

	if ev.Target.Kind == TargetAnnotation {
		if m, ok := b.Marker(ev.Target.ID); ok {
			s.selectMarker(m.ID())
			if !m.Locked {
				g.dragMarker = m.ID()
			}
			return
		}
	}

	if s.tool == ToolConnect {
		if ev.Target.Kind != TargetPlayer {
			g.source = ""
		}
		return
	}

	switch ev.Target.Kind {
	case TargetNone:
		b.ClearSelection()
	case TargetPlayer:
		if s.tool == ToolMove {
			g.dragPlayer = ev.Target.ID
		}
	case TargetBall:
		if s.tool == ToolMove && b.possessor == "" {
			g.dragBall = true
		}
	case TargetNote:
		if s.tool == ToolMove {
			g.dragNote = ev.Target.ID
		}
	}

	switch s.tool {
	case ToolNote:
		s.pendingNote = ptr(pos)

	case ToolVector:
		g.vectorStart = ptr(pos)
		g.vectorSize = 0

	case ToolShape:
		id := b.PlaceMarker(s.shape, pos, s.shapeSize, s.color)
		s.selectedMarker = id

	case ToolDraw:
		g.drawing = true
		g.freehand = []pitch.Position{pos}

	case ToolArrows:
		if ev.Target.Kind == TargetPlayer {
			if at, ok := s.playerPitch(ev.Target.ID); ok {
				g.source = ev.Target.ID
				g.arrowEnd = ptr(at)
			}
			return
		}
		g.arrowStart = ptr(s.snap(pos))

	case ToolPath:
		cur := s.snap(pos)
		if len(g.pathPoints) == 0 {
			g.pathPoints = []pitch.Position{cur}
			return
		}
		last := g.pathPoints[len(g.pathPoints)-1]
		if pitch.Distance(cur, last) < PathCloseRadius {
			if len(g.pathPoints) > 1 {
				b.AddAnnotation(annotation.Path{Base: s.newBase(true), Points: g.pathPoints})
			}
			g.pathPoints, g.pathPreview = nil, nil
			return
		}
		g.pathPoints = append(g.pathPoints, cur)

	case ToolCurve:
		if g.bending && g.curveStart != nil && g.curveEnd != nil && g.curveControl != nil {
			b.AddAnnotation(annotation.Curve{
				Base:   s.newBase(true),
				Points: [3]pitch.Position{*g.curveStart, *g.curveControl, *g.curveEnd},
			})
			g.curveStart, g.curveEnd, g.curveControl, g.bending = nil, nil, nil, false
			return
		}
		g.curveStart, g.curveEnd = ptr(pos), ptr(pos)
		g.curveControl, g.bending = nil, false
	}
}

func (s *Session) PointerMove(ev Pointer) {
	b := s.Active()
	pos := s.mapper.ScreenToPitch(ev.Screen)
	g := &s.gesture
	if g.down {
		g.moved = true
	}

	switch {
	case g.dragPlayer != "" && s.tool == ToolMove:
		_ = b.MovePlayer(g.dragPlayer, pitch.ToField(pos))
		return
	case g.dragMarker != "":
		b.MoveMarker(g.dragMarker, pos)
		return
	case g.vectorStart != nil:
		g.vectorSize = pitch.Distance(pos, *g.vectorStart) * VectorScale
		s.touch()
		return
	case g.dragBall && s.tool == ToolMove && b.possessor == "":
		_ = b.MoveBall(pitch.ToField(pos))
		return
	case g.dragNote != "":
		b.MoveNote(g.dragNote, pos)
		return
	case g.erasing:
		if ev.Target.Kind == TargetAnnotation {
			s.RemoveAnnotation(ev.Target.ID)
		}
		return
	}

	switch s.tool {
	case ToolArrows:
		if g.source != "" || g.arrowStart != nil {
			g.arrowEnd = ptr(s.snap(pos))
		}
	case ToolPath:
		if len(g.pathPoints) > 0 {
			g.pathPreview = ptr(s.snap(pos))
		}
	case ToolCurve:
		if g.bending {
			g.curveControl = ptr(pos)
		} else if g.curveStart != nil {
			g.curveEnd = ptr(pos)
		}
	case ToolDraw:
		if g.drawing {
			g.freehand = append(g.freehand, pos)
		}
	default:
		return
	}
	s.touch()
}

func (s *Session) PointerUp(ev Pointer) {
	b := s.Active()
	pos := s.mapper.ScreenToPitch(ev.Screen)
	g := &s.gesture
	click := g.down && !g.moved && ev.Target.Kind == TargetPlayer && g.downTarget == ev.Target
	g.down = false
	g.erasing = false
	g.dragPlayer, g.dragMarker, g.dragNote = "", "", ""
	defer s.touch()

	if g.vectorStart != nil {
		if g.vectorSize > MinVectorSize {
			s.selectedMarker = b.PlaceMarker(s.shape, *g.vectorStart, g.vectorSize, s.color)
		}
		g.vectorStart, g.vectorSize = nil, 0
		return
	}

	if g.dragBall {
		g.dragBall = false
		if id, ok := motion.FindNearest(pos, b.candidates(), motion.SnapRadius); ok {
			_ = b.GiveBall(id)
		}
	}

	if g.drawing {
		if len(g.freehand) > 1 {
			b.AddAnnotation(annotation.Freehand{Base: s.newBase(false), Points: g.freehand})
		}
		g.freehand, g.drawing = nil, false
	}

	if s.tool == ToolArrows && (g.source != "" || g.arrowStart != nil) && g.arrowEnd != nil {
		start, ok, anchor := pitch.Position{}, false, annotation.Ground
		if g.source != "" {
			start, ok = s.playerPitch(g.source)
			anchor = g.source
		} else {
			start, ok = *g.arrowStart, true
		}
		if ok && pitch.Distance(start, *g.arrowEnd) > MinStrokeLength {
			b.AddAnnotation(annotation.Line{
				Base:     s.newBase(true),
				PlayerID: anchor,
				Points:   [2]pitch.Position{start, *g.arrowEnd},
			})
		}
		g.source, g.arrowStart, g.arrowEnd = "", nil, nil
	}

	if s.tool == ToolCurve && !g.bending && g.curveStart != nil && g.curveEnd != nil {
		if pitch.Distance(*g.curveStart, *g.curveEnd) < MinStrokeLength {
			g.curveStart, g.curveEnd = nil, nil
		} else {
			g.bending = true
			g.curveControl = ptr(pitch.Midpoint(*g.curveStart, *g.curveEnd))
		}
	}

	if click {
		s.clickPlayer(ev.Target.ID)
	}
}

// clickPlayer handles a press and release on the same player without
// movement.
func (s *Session) clickPlayer(id string) {
	b := s.Active()
	switch s.tool {
	case ToolEraser, ToolCurve, ToolPath, ToolNote, ToolShape, ToolVector:
		return
	case ToolConnect:
		g := &s.gesture
		switch {
		case g.source == "":
			g.source = id
		case g.source != id:
			b.AddAnnotation(annotation.Connection{
				Base:      s.newBase(false),
				PlayerIDs: [2]string{g.source, id},
			})
			g.source = ""
		default:
			g.source = ""
		}
		return
	case ToolMove:
		if b.possessor != "" && id != b.possessor && b.isSelected(b.possessor) {
			_ = b.Pass(id)
			return
		}
	}
	_ = b.SelectPlayer(id)
}

// Preview is the drawing in progress, in pitch space.
type Preview struct {
	Arrow       []pitch.Position `json:"arrow,omitempty"`
	Path        []pitch.Position `json:"path,omitempty"`
	Curve       []pitch.Position `json:"curve,omitempty"`
	Freehand    []pitch.Position `json:"freehand,omitempty"`
	Vector      *VectorPreview   `json:"vector,omitempty"`
	ConnectFrom string           `json:"connectFrom,omitempty"`
}

type VectorPreview struct {
	Center pitch.Position `json:"center"`
	Size   float64        `json:"size"`
}

func (s *Session) preview() *Preview {
	g := &s.gesture
	p := &Preview{}
	shown := false

	if s.tool == ToolConnect && g.source != "" {
		p.ConnectFrom = g.source
		shown = true
	}
	if g.arrowEnd != nil {
		start := g.arrowStart
		if g.source != "" {
			if at, ok := s.playerPitch(g.source); ok {
				start = &at
			}
		}
		if start != nil {
			p.Arrow = []pitch.Position{*start, *g.arrowEnd}
			shown = true
		}
	}
	if len(g.pathPoints) > 0 {
		p.Path = append([]pitch.Position(nil), g.pathPoints...)
		if g.pathPreview != nil {
			p.Path = append(p.Path, *g.pathPreview)
		}
		shown = true
	}
	if g.curveStart != nil && g.curveEnd != nil {
		ctrl := pitch.Midpoint(*g.curveStart, *g.curveEnd)
		if g.curveControl != nil {
			ctrl = *g.curveControl
		}
		p.Curve = []pitch.Position{*g.curveStart, ctrl, *g.curveEnd}
		shown = true
	}
	if len(g.freehand) > 0 {
		p.Freehand = append([]pitch.Position(nil), g.freehand...)
		shown = true
	}
	if g.vectorStart != nil {
		p.Vector = &VectorPreview{Center: *g.vectorStart, Size: g.vectorSize}
		shown = true
	}
	if !shown {
		return nil
	}
	return p
}
