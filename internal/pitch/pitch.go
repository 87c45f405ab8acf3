// Package pitch converts between screen, pitch-percentage and field space.
//
// Pitch space spans the whole rendered pitch element (0..100 per axis,
// margins included). Field space spans only the inner playing area and is
// what player and ball positions are stored in.
package pitch

import "math"

const (
	Margin = 5.0
	Scale  = 0.9
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "vertical" and treats anything else as horizontal.
func ParseOrientation(s string) Orientation {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the on-screen bounding box of the pitch element.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPitch maps a field position onto pitch-percentage space.
func ToPitch(field Position) Position {
	return Position{X: Margin + field.X*Scale, Y: Margin + field.Y*Scale}
}

// ToField maps a pitch-percentage position onto field space.
func ToField(p Position) Position {
	return Position{X: (p.X - Margin) / Scale, Y: (p.Y - Margin) / Scale}
}

func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp interpolates between a and b. Written as a(1-t)+bt so that t=0 and
// t=1 return the endpoints bit for bit.
func Lerp(a, b Position, t float64) Position {
	return Position{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
	}
}

func Midpoint(a, b Position) Position {
	return Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Mapper converts pointer coordinates for one rendered pitch. In vertical
// layout screen X drives pitch Y and screen Y drives pitch X; the swap is
// applied in both directions.
type Mapper struct {
	Bounds      Rect
	Orientation Orientation
}

func (m Mapper) ScreenToPitch(screen Position) Position {
	var p Position
	if m.Bounds.Width != 0 {
		p.X = (screen.X - m.Bounds.Left) / m.Bounds.Width * 100
	}
	if m.Bounds.Height != 0 {
		p.Y = (screen.Y - m.Bounds.Top) / m.Bounds.Height * 100
	}
	if m.Orientation == Vertical {
		p.X, p.Y = p.Y, p.X
	}
	return p
}

func (m Mapper) PitchToScreen(p Position) Position {
	if m.Orientation == Vertical {
		p.X, p.Y = p.Y, p.X
	}
	return Position{
		X: m.Bounds.Left + p.X/100*m.Bounds.Width,
		Y: m.Bounds.Top + p.Y/100*m.Bounds.Height,
	}
}

func (m Mapper) ScreenToField(screen Position) Position {
	return ToField(m.ScreenToPitch(screen))
}
