// Package annotation holds the drawings a coach places on a board and the
// per-board store that keeps them in authoring order.
package annotation

import (
	"math"

	"github.com/vladimirvolkov/tactics/internal/pitch"
)

type Kind string

const (
	KindLine       Kind = "arrow"
	KindCurve      Kind = "curve"
	KindPath       Kind = "path"
	KindFreehand   Kind = "freehand"
	KindMarker     Kind = "shape"
	KindConnection Kind = "connection"
	KindPassTrace  Kind = "passTrace"
)

// Ground is the PlayerID of a line that was not started on a player.
const Ground = "ground"

type Shape string

const (
	ShapeCross  Shape = "x"
	ShapeCircle Shape = "circle"
	ShapeBox    Shape = "box"
	ShapeSpace  Shape = "space"
)

// Annotation is implemented by every drawing variant.
type Annotation interface {
	ID() string
	Kind() Kind
	Color() string
}

// Motion is implemented by the variants a mover can follow during
// playback: Line, Curve and Path. Points are in pitch space.
type Motion interface {
	Annotation
	Start() pitch.Position
	PointAt(t float64) pitch.Position
}

type Base struct {
	AnnotationID string `json:"id"`
	Stroke       string `json:"color"`
	Dashed       bool   `json:"dashed,omitempty"`
}

func (b Base) ID() string    { return b.AnnotationID }
func (b Base) Color() string { return b.Stroke }

// Line is a straight two-point run, optionally anchored to a player.
type Line struct {
	Base
	PlayerID string            `json:"playerId"`
	Points   [2]pitch.Position `json:"points"`
}

func (Line) Kind() Kind              { return KindLine }
func (l Line) Start() pitch.Position { return l.Points[0] }

func (l Line) PointAt(t float64) pitch.Position {
	return pitch.Lerp(l.Points[0], l.Points[1], t)
}

// Curve is a quadratic Bézier: start, control, end.
type Curve struct {
	Base
	Points [3]pitch.Position `json:"points"`
}

func (Curve) Kind() Kind              { return KindCurve }
func (c Curve) Start() pitch.Position { return c.Points[0] }

func (c Curve) PointAt(t float64) pitch.Position {
	p0, p1, p2 := c.Points[0], c.Points[1], c.Points[2]
	u := 1 - t
	a, b, d := u*u, 2*u*t, t*t
	return pitch.Position{
		X: a*p0.X + b*p1.X + d*p2.X,
		Y: a*p0.Y + b*p1.Y + d*p2.Y,
	}
}

// Path is a polyline; playback spends equal time on every segment
// regardless of its length.
type Path struct {
	Base
	Points []pitch.Position `json:"points"`
}

func (Path) Kind() Kind { return KindPath }

func (p Path) Start() pitch.Position {
	if len(p.Points) == 0 {
		return pitch.Position{}
	}
	return p.Points[0]
}

func (p Path) PointAt(t float64) pitch.Position {
	switch len(p.Points) {
	case 0:
		return pitch.Position{}
	case 1:
		return p.Points[0]
	}
	n := len(p.Points) - 1
	scaled := t * float64(n)
	seg := int(math.Floor(scaled))
	if seg > n-1 {
		seg = n - 1
	}
	if seg < 0 {
		seg = 0
	}
	return pitch.Lerp(p.Points[seg], p.Points[seg+1], scaled-float64(seg))
}

type Freehand struct {
	Base
	Points []pitch.Position `json:"points"`
}

func (Freehand) Kind() Kind { return KindFreehand }

// Marker is a zone or point marker. Locked markers cannot be dragged.
type Marker struct {
	Base
	Shape    Shape          `json:"shapeType"`
	Position pitch.Position `json:"position"`
	Size     float64        `json:"size"`
	Locked   bool           `json:"isLocked,omitempty"`
}

func (Marker) Kind() Kind { return KindMarker }

// Connection links two players. It stores no points; renderers read the
// players' live positions.
type Connection struct {
	Base
	PlayerIDs [2]string `json:"playerIds"`
}

func (Connection) Kind() Kind { return KindConnection }

// PassTrace records where a pass travelled.
type PassTrace struct {
	Base
	Points [2]pitch.Position `json:"points"`
}

func (PassTrace) Kind() Kind { return KindPassTrace }

// IsMotion reports whether a is eligible for playback.
func IsMotion(a Annotation) bool {
	_, ok := a.(Motion)
	return ok
}

// Note is a text instruction pinned to the board. Notes are not drawings
// and live in their own collection.
type Note struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Position pitch.Position `json:"position"`
	Color    string         `json:"color"`
}
